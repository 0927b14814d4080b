package domain

type FAQItem struct {
	ID       string
	Category string
	Question string
	Answer   string
}
