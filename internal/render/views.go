package render

import (
	"html/template"

	"oatmeal/internal/domain/models"
)

// View structs are fully populated: every field a template binds is
// guaranteed non-empty after the merge step, so templates never need
// their own nil checks.

type NavLink struct {
	Label    string
	URL      string
	Children []NavLink
}

type FooterColumnView struct {
	Title string
	Links []NavLink
}

type FooterView struct {
	Copyright   string
	SocialLinks []models.SocialLink
	Columns     []FooterColumnView
}

// Layout is the chrome shared by every page.
type Layout struct {
	Title       string
	Description string
	Canonical   string
	SiteName    string
	Navigation  []NavLink
	Footer      FooterView
	// Preview marks that this render runs with a draft-visible session.
	Preview   bool
	PreviewID string
}

type HeroView struct {
	Headline    string
	Subheadline string
	CtaText     string
	CtaLink     string
	ShowBadge   bool
}

type FeatureView struct {
	Icon        string
	Title       string
	Description string
	Link        string
}

type TestimonialView struct {
	Quote         string
	AuthorName    string
	AuthorTitle   string
	AuthorCompany string
	AvatarURL     string
}

type HomeView struct {
	Layout
	Hero                 HeroView
	FeaturesEyebrow      string
	FeaturesHeadline     string
	FeaturesDescription  string
	Features             []FeatureView
	TestimonialsHeadline string
	Testimonials         []TestimonialView
}

type PricingTierView struct {
	Name        string
	Price       string
	Period      string
	Description string
	Highlighted bool
	Features    []string
	ButtonText  string
	ButtonLink  string
}

type PricingView struct {
	Layout
	HeroHeadline    string
	HeroDescription string
	Tiers           []PricingTierView
	FAQHeadline     string
	FAQs            []models.FAQ
}

type TeamMemberView struct {
	Name     string
	Role     string
	Bio      string
	PhotoURL string
	Socials  []models.SocialLink
}

type AboutView struct {
	Layout
	HeroHeadline    string
	HeroDescription string
	Stats           []models.Stat
	StoryHeadline   string
	StoryItems      []models.StoryItem
	TeamHeadline    string
	TeamDescription string
	TeamMembers     []TeamMemberView
}

type ContactView struct {
	Layout
	HeroHeadline    string
	HeroDescription string
	Email           string
	Phone           string
	Address         string
	FormTitle       string
	FormDescription string
	SuccessMessage  string
}

type PostCardView struct {
	Title    string
	Excerpt  string
	Slug     string
	Date     string
	Author   string
	Category string
}

type BlogView struct {
	Layout
	Headline    string
	Description string
	Posts       []PostCardView
	HasNextPage bool
	EndCursor   string
}

type PostView struct {
	Layout
	Title      string
	Content    template.HTML
	Date       string
	Author     string
	AuthorBio  string
	Categories []string
	Tags       []string
	ImageURL   string
	ImageAlt   string
}

type PageView struct {
	Layout
	Title   string
	Content template.HTML
}

type ErrorView struct {
	Layout
	Status  int
	Message string
}
