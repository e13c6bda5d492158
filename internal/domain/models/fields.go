package models

// ACF custom-field payloads. The CMS makes no shape guarantees here:
// every leaf is optional and the render layer substitutes defaults for
// anything missing. Strings stay value-typed (empty means absent);
// anything where absent and empty-but-present differ is a pointer.

type LinkNodes struct {
	Nodes []struct {
		URI string `json:"uri"`
	} `json:"nodes"`
}

// First returns the URI of the first linked node, or "".
func (l *LinkNodes) First() string {
	if l == nil || len(l.Nodes) == 0 {
		return ""
	}
	return l.Nodes[0].URI
}

type Feature struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

type Testimonial struct {
	Quote         string     `json:"quote"`
	AuthorName    string     `json:"authorName"`
	AuthorTitle   string     `json:"authorTitle,omitempty"`
	AuthorCompany string     `json:"authorCompany,omitempty"`
	Avatar        *MediaNode `json:"avatar,omitempty"`
}

type HomepageFields struct {
	HeroHeadline         string        `json:"heroHeadline,omitempty"`
	HeroSubheadline      string        `json:"heroSubheadline,omitempty"`
	HeroCtaText          string        `json:"heroCtaText,omitempty"`
	HeroCtaLink          *LinkNodes    `json:"heroCtaLink,omitempty"`
	HeroShowBadge        *bool         `json:"heroShowBadge,omitempty"`
	FeaturesEyebrow      string        `json:"featuresEyebrow,omitempty"`
	FeaturesHeadline     string        `json:"featuresHeadline,omitempty"`
	FeaturesDescription  string        `json:"featuresDescription,omitempty"`
	Features             []Feature     `json:"features,omitempty"`
	TestimonialsHeadline string        `json:"testimonialsHeadline,omitempty"`
	Testimonials         []Testimonial `json:"testimonials,omitempty"`
}

type PricingTier struct {
	Name        string     `json:"name"`
	Price       string     `json:"price"`
	Period      string     `json:"period"`
	Description string     `json:"description,omitempty"`
	Highlighted bool       `json:"highlighted"`
	Features    []string   `json:"features,omitempty"`
	ButtonText  string     `json:"buttonText,omitempty"`
	ButtonLink  *LinkNodes `json:"buttonLink,omitempty"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type PricingFields struct {
	HeroHeadline    string        `json:"heroHeadline,omitempty"`
	HeroDescription string        `json:"heroDescription,omitempty"`
	PricingTiers    []PricingTier `json:"pricingTiers,omitempty"`
	FAQHeadline     string        `json:"faqHeadline,omitempty"`
	FAQs            []FAQ         `json:"faqs,omitempty"`
}

type Stat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

type StoryItem struct {
	Number      string `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon,omitempty"`
}

type TeamMember struct {
	Name        string       `json:"name"`
	Role        string       `json:"role"`
	Bio         string       `json:"bio,omitempty"`
	Photo       *MediaNode   `json:"photo,omitempty"`
	SocialLinks []SocialLink `json:"socialLinks,omitempty"`
}

type AboutFields struct {
	HeroHeadline    string       `json:"heroHeadline,omitempty"`
	HeroDescription string       `json:"heroDescription,omitempty"`
	Stats           []Stat       `json:"stats,omitempty"`
	StoryHeadline   string       `json:"storyHeadline,omitempty"`
	StoryItems      []StoryItem  `json:"storyItems,omitempty"`
	TeamHeadline    string       `json:"teamHeadline,omitempty"`
	TeamDescription string       `json:"teamDescription,omitempty"`
	TeamMembers     []TeamMember `json:"teamMembers,omitempty"`
}

type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type ContactFields struct {
	HeroHeadline    string       `json:"heroHeadline,omitempty"`
	HeroDescription string       `json:"heroDescription,omitempty"`
	ContactInfo     *ContactInfo `json:"contactInfo,omitempty"`
	FormTitle       string       `json:"formTitle,omitempty"`
	FormDescription string       `json:"formDescription,omitempty"`
	SuccessMessage  string       `json:"successMessage,omitempty"`
}

// PageContent couples the page node with its ACF fields payload for the
// structured marketing pages.
type PageContent[F any] struct {
	Page   *Page
	Fields *F
}
