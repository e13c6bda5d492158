package render

import (
	"html/template"
	"strings"

	"oatmeal/internal/domain/models"
	"oatmeal/internal/seo"
)

// Fallback substitution lives here, in one merge function per page,
// instead of scattered inline defaults. Every merge is field-level:
// present CMS values win, absent leaves get the sample default, and the
// resulting view is fully populated.

func str(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// MergeLayout builds the shared chrome from SiteOptions (nil when the
// backend is unreachable or has no options configured).
func MergeLayout(siteName, siteURL, path, title, description string, opts *models.SiteOptions, session *models.PreviewSession) Layout {
	l := Layout{
		SiteName:    siteName,
		Navigation:  defaultNavigation,
		Footer:      defaultFooter,
		Canonical:   seo.Canonical(siteURL, path),
		Title:       seo.Title(title, siteName),
		Description: seo.Description(str(description, defaultSiteDescription)),
	}

	if session != nil {
		l.Preview = true
		l.PreviewID = session.ContentID
	}

	if opts == nil {
		return l
	}

	if opts.SEO.DefaultTitle != "" && title == "" {
		l.Title = opts.SEO.DefaultTitle
	}
	if opts.SEO.DefaultDescription != "" && description == "" {
		l.Description = seo.Description(opts.SEO.DefaultDescription)
	}

	if len(opts.Header.Navigation) > 0 {
		l.Navigation = navLinks(opts.Header.Navigation)
	}

	if opts.Footer.Copyright != "" {
		l.Footer.Copyright = opts.Footer.Copyright
	}
	if len(opts.Footer.SocialLinks) > 0 {
		l.Footer.SocialLinks = opts.Footer.SocialLinks
	}
	if len(opts.Footer.FooterColumns) > 0 {
		columns := make([]FooterColumnView, 0, len(opts.Footer.FooterColumns))
		for _, c := range opts.Footer.FooterColumns {
			columns = append(columns, FooterColumnView{Title: c.Title, Links: navLinks(c.Links)})
		}
		l.Footer.Columns = columns
	}

	return l
}

func navLinks(items []models.NavItem) []NavLink {
	links := make([]NavLink, 0, len(items))
	for _, it := range items {
		links = append(links, NavLink{
			Label:    it.Label,
			URL:      it.URL,
			Children: navLinks(it.Children),
		})
	}
	return links
}

// MergeHome merges homepage ACF fields over the sample content.
func MergeHome(layout Layout, fields *models.HomepageFields) HomeView {
	v := HomeView{
		Layout: layout,
		Hero: HeroView{
			Headline:    defaultHeroHeadline,
			Subheadline: defaultHeroSubheadline,
			CtaText:     defaultHeroCtaText,
			CtaLink:     defaultHeroCtaLink,
			ShowBadge:   true,
		},
		FeaturesEyebrow:      defaultFeaturesEyebrow,
		FeaturesHeadline:     defaultFeaturesHeadline,
		FeaturesDescription:  defaultFeaturesDescription,
		Features:             defaultFeatures,
		TestimonialsHeadline: defaultTestimonialsHeadline,
		Testimonials:         defaultTestimonials,
	}

	if fields == nil {
		return v
	}

	v.Hero.Headline = str(fields.HeroHeadline, v.Hero.Headline)
	v.Hero.Subheadline = str(fields.HeroSubheadline, v.Hero.Subheadline)
	v.Hero.CtaText = str(fields.HeroCtaText, v.Hero.CtaText)
	v.Hero.CtaLink = str(fields.HeroCtaLink.First(), v.Hero.CtaLink)
	if fields.HeroShowBadge != nil {
		v.Hero.ShowBadge = *fields.HeroShowBadge
	}

	v.FeaturesEyebrow = str(fields.FeaturesEyebrow, v.FeaturesEyebrow)
	v.FeaturesHeadline = str(fields.FeaturesHeadline, v.FeaturesHeadline)
	v.FeaturesDescription = str(fields.FeaturesDescription, v.FeaturesDescription)

	if len(fields.Features) > 0 {
		features := make([]FeatureView, 0, len(fields.Features))
		for _, f := range fields.Features {
			features = append(features, FeatureView{
				Icon:        f.Icon,
				Title:       f.Title,
				Description: f.Description,
				Link:        f.Link,
			})
		}
		v.Features = features
	}

	v.TestimonialsHeadline = str(fields.TestimonialsHeadline, v.TestimonialsHeadline)
	if len(fields.Testimonials) > 0 {
		quotes := make([]TestimonialView, 0, len(fields.Testimonials))
		for _, q := range fields.Testimonials {
			tv := TestimonialView{
				Quote:         q.Quote,
				AuthorName:    q.AuthorName,
				AuthorTitle:   q.AuthorTitle,
				AuthorCompany: q.AuthorCompany,
			}
			if q.Avatar != nil {
				tv.AvatarURL = q.Avatar.Node.SourceURL
			}
			quotes = append(quotes, tv)
		}
		v.Testimonials = quotes
	}

	return v
}

// MergePricing merges pricing ACF fields over the sample content.
func MergePricing(layout Layout, fields *models.PricingFields) PricingView {
	v := PricingView{
		Layout:          layout,
		HeroHeadline:    defaultPricingHeadline,
		HeroDescription: defaultPricingDescription,
		Tiers:           defaultPricingTiers,
		FAQHeadline:     defaultFAQHeadline,
		FAQs:            defaultFAQs,
	}

	if fields == nil {
		return v
	}

	v.HeroHeadline = str(fields.HeroHeadline, v.HeroHeadline)
	v.HeroDescription = str(fields.HeroDescription, v.HeroDescription)
	v.FAQHeadline = str(fields.FAQHeadline, v.FAQHeadline)

	if len(fields.PricingTiers) > 0 {
		tiers := make([]PricingTierView, 0, len(fields.PricingTiers))
		for _, t := range fields.PricingTiers {
			tiers = append(tiers, PricingTierView{
				Name:        t.Name,
				Price:       t.Price,
				Period:      t.Period,
				Description: t.Description,
				Highlighted: t.Highlighted,
				Features:    t.Features,
				ButtonText:  str(t.ButtonText, "Get started"),
				ButtonLink:  str(t.ButtonLink.First(), "/contact"),
			})
		}
		v.Tiers = tiers
	}

	if len(fields.FAQs) > 0 {
		v.FAQs = fields.FAQs
	}

	return v
}

// MergeAbout merges about-page ACF fields over the sample content.
func MergeAbout(layout Layout, fields *models.AboutFields) AboutView {
	v := AboutView{
		Layout:          layout,
		HeroHeadline:    defaultAboutHeadline,
		HeroDescription: defaultAboutDescription,
		Stats:           defaultStats,
		StoryHeadline:   defaultStoryHeadline,
		StoryItems:      defaultStoryItems,
		TeamHeadline:    defaultTeamHeadline,
		TeamDescription: defaultTeamDescription,
		TeamMembers:     defaultTeamMembers,
	}

	if fields == nil {
		return v
	}

	v.HeroHeadline = str(fields.HeroHeadline, v.HeroHeadline)
	v.HeroDescription = str(fields.HeroDescription, v.HeroDescription)
	v.StoryHeadline = str(fields.StoryHeadline, v.StoryHeadline)
	v.TeamHeadline = str(fields.TeamHeadline, v.TeamHeadline)
	v.TeamDescription = str(fields.TeamDescription, v.TeamDescription)

	if len(fields.Stats) > 0 {
		v.Stats = fields.Stats
	}
	if len(fields.StoryItems) > 0 {
		v.StoryItems = fields.StoryItems
	}
	if len(fields.TeamMembers) > 0 {
		members := make([]TeamMemberView, 0, len(fields.TeamMembers))
		for _, m := range fields.TeamMembers {
			member := TeamMemberView{
				Name:    m.Name,
				Role:    m.Role,
				Bio:     m.Bio,
				Socials: m.SocialLinks,
			}
			if m.Photo != nil {
				member.PhotoURL = m.Photo.Node.SourceURL
			}
			members = append(members, member)
		}
		v.TeamMembers = members
	}

	return v
}

// MergeContact merges contact-page ACF fields over the sample content.
func MergeContact(layout Layout, fields *models.ContactFields) ContactView {
	v := ContactView{
		Layout:          layout,
		HeroHeadline:    defaultContactHeadline,
		HeroDescription: defaultContactDescription,
		Email:           defaultContactEmail,
		Phone:           defaultContactPhone,
		Address:         defaultContactAddress,
		FormTitle:       defaultFormTitle,
		FormDescription: defaultFormDescription,
		SuccessMessage:  defaultSuccessMessage,
	}

	if fields == nil {
		return v
	}

	v.HeroHeadline = str(fields.HeroHeadline, v.HeroHeadline)
	v.HeroDescription = str(fields.HeroDescription, v.HeroDescription)
	v.FormTitle = str(fields.FormTitle, v.FormTitle)
	v.FormDescription = str(fields.FormDescription, v.FormDescription)
	v.SuccessMessage = str(fields.SuccessMessage, v.SuccessMessage)

	if fields.ContactInfo != nil {
		v.Email = str(fields.ContactInfo.Email, v.Email)
		v.Phone = str(fields.ContactInfo.Phone, v.Phone)
		v.Address = str(fields.ContactInfo.Address, v.Address)
	}

	return v
}

// MergeBlog builds the blog index view; nil posts means the backend was
// unreachable and the sample posts are shown instead.
func MergeBlog(layout Layout, list *models.PostList) BlogView {
	v := BlogView{
		Layout:      layout,
		Headline:    defaultBlogHeadline,
		Description: defaultBlogDescription,
		Posts:       defaultPosts,
	}

	if list == nil || len(list.Posts) == 0 {
		return v
	}

	cards := make([]PostCardView, 0, len(list.Posts))
	for _, p := range list.Posts {
		cards = append(cards, postCard(p))
	}

	v.Posts = cards
	v.HasNextPage = list.PageInfo.HasNextPage
	v.EndCursor = list.PageInfo.EndCursor

	return v
}

func postCard(p models.Post) PostCardView {
	card := PostCardView{
		Title:   p.Title,
		Excerpt: stripTags(p.Excerpt),
		Slug:    p.Slug,
		Date:    p.Date,
	}
	if p.Author != nil {
		card.Author = p.Author.Node.Name
	}
	if p.Categories != nil && len(p.Categories.Nodes) > 0 {
		card.Category = p.Categories.Nodes[0].Name
	}
	return card
}

// MergePost builds the single-post view from a defined post.
func MergePost(layout Layout, post *models.Post) PostView {
	v := PostView{
		Layout:  layout,
		Title:   post.Title,
		Content: template.HTML(post.Content),
		Date:    post.Date,
	}

	if post.Author != nil {
		v.Author = post.Author.Node.Name
		v.AuthorBio = post.Author.Node.Description
	}
	if post.FeaturedImage != nil {
		v.ImageURL = post.FeaturedImage.Node.SourceURL
		v.ImageAlt = post.FeaturedImage.Node.AltText
	}
	if post.Categories != nil {
		for _, c := range post.Categories.Nodes {
			v.Categories = append(v.Categories, c.Name)
		}
	}
	if post.Tags != nil {
		for _, t := range post.Tags.Nodes {
			v.Tags = append(v.Tags, t.Name)
		}
	}

	return v
}

// MergePage builds the generic CMS-page view.
func MergePage(layout Layout, page *models.Page) PageView {
	return PageView{
		Layout:  layout,
		Title:   page.Title,
		Content: template.HTML(page.Content),
	}
}

// stripTags removes markup from CMS excerpts so cards render plain text.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
