package service

import (
	"fmt"

	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/repository"
)

var teamFAQ = []domain.FAQItem{
	{
		ID:       "1",
		Category: "Reporting",
		Question: "When is the weekly work report due?",
		Answer: "Upload the weekly report using the \"Weekly Report\" template in the team shared folder " +
			"by 4 PM every Friday. Any issues must be listed in the Highlight section.",
	},
	{
		ID:       "2",
		Category: "Tool usage",
		Question: "Who can create a new project?",
		Answer: "Part leads and PMs (project managers) can create projects. If you need a new project, " +
			"ask your part lead for approval first.",
	},
	{
		ID:       "3",
		Category: "Leave requests",
		Question: "How do I hand over work when taking annual leave?",
		Answer: "Register the dates on the department shared calendar at least 3 days ahead, name a stand-in " +
			"for every task in Doing and share it by mail. Update your emergency contact in the contact list.",
	},
}

type guideService struct {
	items []domain.FAQItem
}

// NewGuideService serves the built-in team FAQ, or items when given.
func NewGuideService(items ...domain.FAQItem) GuideService {
	if len(items) == 0 {
		items = teamFAQ
	}
	return &guideService{items: items}
}

// List returns FAQ entries, optionally only those in category.
func (s *guideService) List(category string) []domain.FAQItem {
	out := make([]domain.FAQItem, 0, len(s.items))
	for _, item := range s.items {
		if category == "" || item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func (s *guideService) Get(id string) (*domain.FAQItem, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("faq item %q: %w", id, repository.ErrNotFound)
}

// Categories lists categories in first-seen order.
func (s *guideService) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range s.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}
