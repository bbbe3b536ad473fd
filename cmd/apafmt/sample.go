package main

// Sample paper used by the sample subcommand. It exercises every
// heading level, a run-in heading, a formula block, and a reference
// list behind a horizontal rule.

const sampleTitleData = `title: The Impact of Technology in Modern Education
author: Jane Doe
institution: University of Technology
course: "EDU-601: Advanced Learning Theories"
instructor: Dr. Alan Turing
date: October 16, 2025
`

const sampleBody = `# Introduction
Artificial intelligence is transforming the landscape of modern education, offering new possibilities for personalized learning and data-driven instruction.

## Background
The integration of technology in educational settings has evolved significantly over the past several decades. From the introduction of computers in classrooms to the current era of artificial intelligence and machine learning, each technological advancement has brought new opportunities and challenges.

### Early Developments
The 1980s marked the beginning of widespread computer adoption in schools. Initial applications focused on basic computer literacy and simple educational software.

#### Research on Early Computing
Smith (2015) conducted a comprehensive study on the effectiveness of early educational technology. The research demonstrated mixed results, with significant variations based on implementation quality and teacher training.

##### Specific Findings from Pilot Programs
Data from pilot programs in California schools showed a 15% improvement in mathematics scores. These early successes laid the groundwork for future technological integration.

The formula for calculating educational impact is: ` + "``Impact = (Post_Score - Pre_Score) / Pre_Score × 100``" + `

## Current Trends
Today's educational technology landscape is characterized by adaptive learning systems, learning analytics, and AI-powered tutoring systems.

---
References
American Psychological Association. (2020). Publication manual of the American Psychological Association (7th ed.). https://doi.org/10.1037/0000165-000
Johnson, S. (2023). AI in modern education. Healthcare Technology Review, 12(3), 45-67.
Smith, A., & Brown, B. (2015). Early educational computing: A retrospective analysis. Journal of Educational Technology, 28(2), 112-134.
Williams, T. (2022). Machine learning for personalized instruction. Academic Press.
`
