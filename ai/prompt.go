// prompt.go - Prompt templates for the mentor endpoints

package ai

import "fmt"

func fieldsPrompt(interests string) string {
	return fmt.Sprintf(`Based on the user's interest in '%s', suggest 4 specific and diverse career fields.

Return the answer ONLY as a JSON array of exactly 4 strings.
Do not include explanations, markdown, or text before or after the JSON.
Your response must be a single JSON array.`, interests)
}

func guidancePrompt(interests, field string) string {
	return fmt.Sprintf(`You are 'Mentor', an expert career AI. Generate an inspiring and detailed career guide for a student interested in '%s', with interests in '%s'. Use markdown and emojis. Include these sections: 🚀 Why Your Interests Are a Perfect Match, 🗺️ Your 6-Month Kickstart Roadmap, 🌟 A Word of Encouragement.`, field, interests)
}

func roadmapPrompt(field string) string {
	return fmt.Sprintf(`Create a detailed, step-by-step career roadmap for a '%s'. The tone must be encouraging, professional, and clear for a student. Format the output using markdown. Use emojis for each phase title.
**CRITICAL:** Structure the response into exactly 4 phases, each with a title like this: '### 🎓 Phase 1: Title'.
Inside each phase, include these EXACT subheadings with bolding:
- **Timeline:** (e.g., 6-12 Months)
- **Key Skills to Acquire:** (A short bulleted list of essential technical and soft skills)
- **Recommended Projects:** (A numbered list of 1-2 project ideas to build a portfolio)
- **Networking & Growth:** (A short bulleted list of tips, like joining communities or finding a mentor)`, field)
}
