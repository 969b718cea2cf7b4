package web

import (
	"net/url"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
)

const siteTitle = "Apply for Benefits and Support"

// chipView is one category filter link.
type chipView struct {
	Label    string
	Count    int
	URL      string
	Selected bool
}

// cardView is one service card with its call-to-action text.
type cardView struct {
	Service domain.Service
	Action  string
}

func cards(services []domain.Service, popularSection bool) []cardView {
	out := make([]cardView, len(services))
	for i, svc := range services {
		out[i] = cardView{Service: svc, Action: svc.ActionLabel(popularSection)}
	}
	return out
}

type catalogView struct {
	Title          string
	Page           *domain.CatalogPage
	CategoryParam  string
	Chips          []chipView
	Popular        []cardView
	Results        []cardView
	PopularHeading string
	EmptyMessage   string
	ClearLabel     string
}

func newCatalogView(page *domain.CatalogPage) catalogView {
	chips := make([]chipView, 0, len(page.Counts))
	for _, c := range page.Counts {
		q := url.Values{}
		if page.Term != "" {
			q.Set("q", page.Term)
		}
		if c.Category != domain.CategoryAll {
			q.Set("category", c.Category.String())
		}
		link := "/"
		if encoded := q.Encode(); encoded != "" {
			link += "?" + encoded
		}
		chips = append(chips, chipView{
			Label:    c.Label,
			Count:    c.Count,
			URL:      link,
			Selected: c.Category == page.Category,
		})
	}

	param := ""
	if page.Category != domain.CategoryAll {
		param = page.Category.String()
	}

	return catalogView{
		Title:          siteTitle,
		Page:           page,
		CategoryParam:  param,
		Chips:          chips,
		Popular:        cards(page.Popular, true),
		Results:        cards(page.Results, false),
		PopularHeading: domain.PopularHeading,
		EmptyMessage:   domain.EmptyCatalogMessage,
		ClearLabel:     domain.ClearFiltersLabel,
	}
}

// fieldView is one rendered form input.
type fieldView struct {
	Name        string
	Label       string
	Value       string
	Error       string
	Placeholder string
	InputType   string
	Select      bool
	Textarea    bool
	Options     []domain.Option
}

type applyView struct {
	Title        string
	ServiceTitle string
	Step         domain.Step
	ShowProgress bool
	Progress     []domain.ProgressMarker
	Fields       []fieldView
	Summary      []domain.SummaryItem
	Reference    string
	SubmittedOn  string
	NextSteps    []string
}

func newApplyView(session *domain.Session, serviceTitle string) applyView {
	view := applyView{
		Title:        session.Step.Heading(),
		ServiceTitle: serviceTitle,
		Step:         session.Step,
		ShowProgress: session.ShowProgress(),
		Progress:     domain.Progress(session.Step),
	}

	if session.Submitted {
		view.Summary = session.Form.Summary()
		view.Reference = session.Reference
		view.SubmittedOn = session.UpdatedAt.Format("2 January 2006")
		view.NextSteps = domain.NextSteps()
		return view
	}

	for _, spec := range session.Step.Fields() {
		value, _ := session.Form.Get(spec.Field)
		view.Fields = append(view.Fields, fieldView{
			Name:        spec.Field.String(),
			Label:       spec.Label,
			Value:       value,
			Error:       session.Errors[spec.Field],
			Placeholder: spec.Placeholder,
			InputType:   string(spec.Kind),
			Select:      spec.Kind == domain.InputSelect,
			Textarea:    spec.Kind == domain.InputTextarea,
			Options:     spec.Options,
		})
	}
	return view
}

type errorView struct {
	Title   string
	Status  int
	Message string
}
