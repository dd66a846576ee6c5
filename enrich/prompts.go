package enrich

const extractInstructions = `You are given a LinkedIn post. You need to extract the number of lines, the language of the post, and tags.

1. Return a valid JSON object. No preamble.
2. The JSON object must have exactly three keys: line_count, language and tags.
3. tags is an array of text tags. Extract a maximum of two tags.
4. language must be English or Hinglish (Hinglish means Hindi + English).

The post to analyze follows as the user message.`

const unifyInstructions = `I will give you a list of tags. You need to unify the tags with the following requirements:

1. Tags are unified and merged to create a shorter list.
   Example 1: "Jobseekers", "Job Hunting" can both be merged into a single tag "Job Search".
   Example 2: "Motivation", "Inspiration", "Drive" can be mapped to "Motivation".
   Example 3: "Personal Growth", "Personal Development", "Self Improvement" can be mapped to "Self Improvement".
   Example 4: "Scam Alert", "Job Scam" can be mapped to "Scams".
2. Each output tag must follow the title case convention, for example "Motivation", "Job Search".
3. Output must be a JSON object. No preamble.
4. The object must map every original tag to its unified tag, and nothing else.
   For example: {"Jobseekers": "Job Search", "Job Hunting": "Job Search", "Motivation": "Motivation"}

The comma-separated list of tags follows as the user message.`
