// Package presenter derives display labels for orders. It is pure: nothing
// here reads the clock, the store or the environment.
package presenter

import (
	"strings"
	"time"

	"eatery/entity"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	dateLayout = "January 02, 2006"
	timeLayout = "3:04 PM"
)

// OrderLabels are recomputed on every call and never stored.
type OrderLabels struct {
	DateLabel      string `json:"dateLabel"`
	TimeLabel      string `json:"timeLabel"`
	TotalLabel     string `json:"totalLabel"`
	StatusLabel    string `json:"statusLabel"`
	StatusProgress int    `json:"statusProgress"`
}

type Formatter struct {
	Location       *time.Location
	Tag            language.Tag
	CurrencySymbol string
}

func NewFormatter(loc *time.Location, tag language.Tag, currencySymbol string) Formatter {
	if loc == nil {
		loc = time.Local
	}
	return Formatter{Location: loc, Tag: tag, CurrencySymbol: currencySymbol}
}

// WithTag returns a copy of f rendering numbers for tag.
func (f Formatter) WithTag(tag language.Tag) Formatter {
	f.Tag = tag
	return f
}

func (f Formatter) Format(o entity.Order) OrderLabels {
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	created := o.CreatedAt.In(loc)

	labels := OrderLabels{
		DateLabel:  created.Format(dateLayout),
		TimeLabel:  created.Format(timeLayout),
		TotalLabel: f.Total(o.TotalAmountMinor),
	}
	if opt, ok := o.Status.Option(); ok {
		labels.StatusLabel = opt.Label
		labels.StatusProgress = opt.ProgressValue
	} else {
		labels.StatusLabel = string(o.Status)
	}
	return labels
}

// Total renders minor units as the currency symbol followed by the major
// amount with exactly two decimals.
func (f Formatter) Total(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	p := message.NewPrinter(f.Tag)
	return sign + f.CurrencySymbol + p.Sprintf("%.2f", float64(minor)/100)
}

// OrderView is an order together with its labels, as listed to clients.
type OrderView struct {
	entity.Order
	Labels OrderLabels `json:"labels"`
}

func (f Formatter) Views(orders []entity.Order) []OrderView {
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderView{Order: o, Labels: f.Format(o)})
	}
	return out
}

// Supported lists the tags numbers can be rendered for, fallback first.
func Supported(fallback language.Tag) []language.Tag {
	tags := []language.Tag{fallback}
	for _, t := range []language.Tag{
		language.MustParse("en-IN"),
		language.AmericanEnglish,
		language.BritishEnglish,
		language.Hindi,
		language.German,
		language.French,
	} {
		if t != fallback {
			tags = append(tags, t)
		}
	}
	return tags
}

// ResolveTag picks the best supported tag for an Accept-Language header.
func ResolveTag(acceptLanguage string, fallback language.Tag) language.Tag {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	supported := Supported(fallback)
	_, idx, conf := language.NewMatcher(supported).Match(tags...)
	if conf == language.No {
		return fallback
	}
	return supported[idx]
}
