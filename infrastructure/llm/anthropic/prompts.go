// ABOUTME: Prompt templates for the takeaways, visual and explain requests
// ABOUTME: Each template exists in English and French; unknown languages fall back to English

package anthropic

import (
	"fmt"

	"visual-summarizer-api/core/domain"
)

var summaryPrompts = map[domain.Mode]map[domain.Language]string{
	domain.ModeTakeaways: {
		domain.LanguageEnglish: `Summarize the following text into a clear, structured summary. Be concise and direct.

Format your response EXACTLY as follows:

## SUMMARY
[2-3 sentences explaining what this is about]

## KEY POINTS
- [Point 1]
- [Point 2]
- [Point 3]
- [Point 4]
- [Point 5]
[Add more if needed, max 7 points]

## STATS & DATA
- [Any number, percentage, statistic or quantifiable data mentioned]
- [Another data point]
[If no stats/data in the text, write "No specific data mentioned"]

Text to summarize:
`,
		domain.LanguageFrench: `Résume le texte suivant de manière claire et structurée. Sois concis et direct.

Formate ta réponse EXACTEMENT comme suit:

## SUMMARY
[2-3 phrases expliquant le sujet]

## KEY POINTS
- [Point 1]
- [Point 2]
- [Point 3]
- [Point 4]
- [Point 5]
[Ajoute plus si nécessaire, max 7 points]

## STATS & DATA
- [Tout chiffre, pourcentage, statistique ou donnée mentionnée]
- [Autre donnée]
[Si pas de stats/données, écris "Aucune donnée spécifique mentionnée"]

Texte à résumer:
`,
	},
	domain.ModeVisual: {
		domain.LanguageEnglish: "Analyze this text and create a visual mind map structure.\n\n" +
			"Format your response EXACTLY as follows:\n\n" +
			"## MINDMAP\n```mindmap\nMain Topic\n  Category 1\n    - Point A\n    - Point B\n  Category 2\n    - Point C\n    - Point D\n  Category 3\n    - Point E\n```\n\n" +
			"## STRUCTURE\n```structure\nMain Topic\n├─ Category 1\n│  ├─ Point A\n│  └─ Point B\n├─ Category 2\n│  ├─ Point C\n│  └─ Point D\n└─ Category 3\n   └─ Point E\n```\n\n" +
			"Rules:\n- Main topic is the central idea\n- 3-5 categories branching from main topic\n- 2-4 points per category\n- Keep text SHORT (max 5 words per item)\n\n" +
			"Text:\n",
		domain.LanguageFrench: "Analyse ce texte et crée une structure de mind map visuelle.\n\n" +
			"Formate ta réponse EXACTEMENT comme suit:\n\n" +
			"## MINDMAP\n```mindmap\nSujet Principal\n  Catégorie 1\n    - Point A\n    - Point B\n  Catégorie 2\n    - Point C\n    - Point D\n  Catégorie 3\n    - Point E\n```\n\n" +
			"## STRUCTURE\n```structure\nSujet Principal\n├─ Catégorie 1\n│  ├─ Point A\n│  └─ Point B\n├─ Catégorie 2\n│  ├─ Point C\n│  └─ Point D\n└─ Catégorie 3\n   └─ Point E\n```\n\n" +
			"Règles:\n- Le sujet principal est l'idée centrale\n- 3-5 catégories partant du sujet principal\n- 2-4 points par catégorie\n- Texte COURT (max 5 mots par élément)\n\n" +
			"Texte:\n",
	},
}

var explainPrompts = map[domain.Language]string{
	domain.LanguageEnglish: "Explain this point in 2-3 sentences with a concrete example: \"%s\"",
	domain.LanguageFrench:  "Explique ce point en 2-3 phrases avec un exemple concret: \"%s\"",
}

// SummaryPrompt builds the full prompt for a summary request
func SummaryPrompt(mode domain.Mode, language domain.Language, sourceText string) (string, bool) {
	byLanguage, ok := summaryPrompts[mode]
	if !ok {
		return "", false
	}
	template, ok := byLanguage[language]
	if !ok {
		template = byLanguage[domain.LanguageEnglish]
	}
	return template + sourceText, true
}

// ExplainPrompt builds the prompt that expands a single point
func ExplainPrompt(language domain.Language, point string) string {
	template, ok := explainPrompts[language]
	if !ok {
		template = explainPrompts[domain.LanguageEnglish]
	}
	return fmt.Sprintf(template, point)
}
