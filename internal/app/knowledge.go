package app

import "strings"

// Article is one knowledge-base entry.
type Article struct {
	ID       int
	Title    string
	Category string
	Summary  string
	ReadTime string
	Tags     []string
}

// CategoryAll matches every article in Search.
const CategoryAll = "all"

// KnowledgeBase is the seeded, read-only article collection behind the
// knowledge engine panel.
type KnowledgeBase struct {
	articles []Article
}

func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{articles: []Article{
		{
			ID:       1,
			Title:    "Optimal Rice Planting Season in Kerala",
			Category: "crops",
			Summary:  "Best practices for rice cultivation during monsoon season, including soil preparation and seed selection.",
			ReadTime: "5 min read",
			Tags:     []string{"rice", "kerala", "monsoon"},
		},
		{
			ID:       2,
			Title:    "Brown Planthopper Control Methods",
			Category: "pests",
			Summary:  "Effective organic and chemical methods to control brown planthopper in rice fields.",
			ReadTime: "7 min read",
			Tags:     []string{"pest control", "rice", "organic"},
		},
		{
			ID:       3,
			Title:    "Drip Irrigation Setup for Vegetable Gardens",
			Category: "irrigation",
			Summary:  "Complete guide to setting up efficient drip irrigation systems for better water conservation.",
			ReadTime: "10 min read",
			Tags:     []string{"irrigation", "vegetables", "water conservation"},
		},
		{
			ID:       4,
			Title:    "Tomato Disease Prevention Guide",
			Category: "pests",
			Summary:  "Common tomato diseases, their symptoms, and preventive measures for healthy crop growth.",
			ReadTime: "8 min read",
			Tags:     []string{"tomato", "disease", "prevention"},
		},
	}}
}

// Categories lists the filter categories in display order.
func (k *KnowledgeBase) Categories() []string {
	return []string{CategoryAll, "crops", "pests", "irrigation"}
}

// Search returns the articles matching category (or CategoryAll) whose
// title, summary, or any tag contains term, case-insensitively. An
// empty term matches everything in the category.
func (k *KnowledgeBase) Search(term, category string) []Article {
	term = strings.ToLower(strings.TrimSpace(term))
	var out []Article
	for _, a := range k.articles {
		if category != CategoryAll && category != "" && a.Category != category {
			continue
		}
		if term != "" && !articleMatches(a, term) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func articleMatches(a Article, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Summary), term) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
