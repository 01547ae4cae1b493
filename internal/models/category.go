package models

import "strings"

// Category is a coarse market segment derived from keyword text.
type Category string

const (
	CategorySoftware Category = "Software/SaaS"
	CategoryConsumer Category = "Consumer Goods/Food"
	CategoryApparel  Category = "Apparel/Footwear"
	CategoryOther    Category = "Other"
)

// FilterAll is the sentinel filter value meaning "no category filter".
const FilterAll = "All"

// categoryRule maps a category to the keyword tokens that select it.
type categoryRule struct {
	category Category
	tokens   []string
}

// categoryRules is evaluated in order and the first match wins. The order
// is a documented policy: a keyword matching both a Software/SaaS token and
// an Apparel/Footwear token is Software/SaaS. Matching is case-sensitive;
// dataset keywords are lowercase search queries.
var categoryRules = []categoryRule{
	{CategorySoftware, []string{
		"software", "crm", "saas", "app", "tool", "platform",
		"hosting", "vpn", "antivirus", "email marketing",
	}},
	{CategoryConsumer, []string{
		"coffee", "snack", "chocolate", "protein", "drink",
		"cereal", "sauce", "supplement", "energy bar",
	}},
	{CategoryApparel, []string{
		"shoes", "sneakers", "boots", "jacket", "jeans",
		"leggings", "socks", "hoodie",
	}},
}

// Categories lists all categories in rule priority order, fallback last.
func Categories() []Category {
	return []Category{CategorySoftware, CategoryConsumer, CategoryApparel, CategoryOther}
}

// Categorize assigns a keyword to exactly one category. It is pure and
// total: keywords matching no rule fall into CategoryOther.
func Categorize(keyword string) Category {
	for _, rule := range categoryRules {
		for _, token := range rule.tokens {
			if strings.Contains(keyword, token) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

// ValidCategory reports whether s names a known category.
func ValidCategory(s string) bool {
	for _, c := range Categories() {
		if string(c) == s {
			return true
		}
	}
	return false
}
