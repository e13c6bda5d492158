package render

import "oatmeal/internal/domain/models"

// Sample content used whenever the CMS is unreachable or a field is
// absent. Substitution is field-level: a page can mix live and default
// content in the same render.

var defaultNavigation = []NavLink{
	{Label: "Home", URL: "/"},
	{Label: "About", URL: "/about"},
	{Label: "Pricing", URL: "/pricing"},
	{Label: "Blog", URL: "/blog"},
	{Label: "Contact", URL: "/contact"},
}

var defaultFooter = FooterView{
	Copyright: "© Oatmeal. All rights reserved.",
	SocialLinks: []models.SocialLink{
		{Platform: "twitter", URL: "#"},
		{Platform: "github", URL: "#"},
		{Platform: "linkedin", URL: "#"},
	},
	Columns: []FooterColumnView{
		{
			Title: "Product",
			Links: []NavLink{
				{Label: "Pricing", URL: "/pricing"},
				{Label: "Blog", URL: "/blog"},
			},
		},
		{
			Title: "Company",
			Links: []NavLink{
				{Label: "About", URL: "/about"},
				{Label: "Contact", URL: "/contact"},
			},
		},
	},
}

const (
	defaultSiteDescription = "A modern SaaS marketing site powered by a headless WordPress backend. Edit all your content in WordPress and see it instantly reflected on your site."

	defaultHeroHeadline    = "Build beautiful marketing sites with Oatmeal"
	defaultHeroSubheadline = defaultSiteDescription
	defaultHeroCtaText     = "Get Started"
	defaultHeroCtaLink     = "/contact"

	defaultFeaturesHeadline    = "Everything you need to launch"
	defaultFeaturesDescription = "Packed with features to help you build and scale your marketing site."
	defaultFeaturesEyebrow     = "Features"

	defaultTestimonialsHeadline = "Loved by teams everywhere"
)

var defaultFeatures = []FeatureView{
	{
		Title:       "Headless WordPress",
		Description: "Manage all your content in WordPress with a powerful GraphQL API.",
	},
	{
		Title:       "Server-side rendering",
		Description: "Every page is rendered on the server for fast first paint and clean SEO.",
	},
	{
		Title:       "Live preview",
		Description: "Editors see drafts on the real site before anything is published.",
	},
}

var defaultTestimonials = []TestimonialView{
	{
		Quote:         "We replaced three tools with Oatmeal and our editors stopped filing tickets to change a headline.",
		AuthorName:    "Priya Natarajan",
		AuthorTitle:   "Head of Marketing",
		AuthorCompany: "Fieldnote Labs",
	},
	{
		Quote:         "The preview mode alone sold us. Writers see the real page before anything ships.",
		AuthorName:    "Tom Okafor",
		AuthorTitle:   "Content Lead",
		AuthorCompany: "Brightline",
	},
	{
		Quote:         "Setup took an afternoon and the site has not needed a developer since.",
		AuthorName:    "Lena Fischer",
		AuthorTitle:   "Founder",
		AuthorCompany: "Paperkite",
	},
}

const (
	defaultPricingHeadline    = "Simple, transparent pricing"
	defaultPricingDescription = "Choose the perfect plan for your needs. All plans include a 30-day free trial with no credit card required."
	defaultFAQHeadline        = "Frequently asked questions"
)

var defaultPricingTiers = []PricingTierView{
	{
		Name:        "Starter",
		Price:       "$0",
		Period:      "/month",
		Description: "Everything you need to get a site online.",
		Features:    []string{"1 site", "Community support", "Basic analytics"},
		ButtonText:  "Start for free",
		ButtonLink:  "/contact",
	},
	{
		Name:        "Pro",
		Price:       "$29",
		Period:      "/month",
		Description: "For growing teams that need more control.",
		Highlighted: true,
		Features:    []string{"Unlimited sites", "Priority support", "Advanced analytics", "Preview mode"},
		ButtonText:  "Start free trial",
		ButtonLink:  "/contact",
	},
	{
		Name:        "Enterprise",
		Price:       "Custom",
		Period:      "",
		Description: "Custom plans for large organizations.",
		Features:    []string{"Dedicated support", "SLA", "Custom integrations"},
		ButtonText:  "Contact sales",
		ButtonLink:  "/contact",
	},
}

var defaultFAQs = []models.FAQ{
	{
		Question: "Can I change plans later?",
		Answer:   "Yes. Upgrades and downgrades take effect immediately and billing is prorated.",
	},
	{
		Question: "Do you offer a free trial?",
		Answer:   "All paid plans include a 30-day free trial with no credit card required.",
	},
	{
		Question: "How does the WordPress integration work?",
		Answer:   "Your content lives in WordPress and is fetched over its GraphQL API on every render.",
	},
}

const (
	defaultAboutHeadline    = "About Oatmeal"
	defaultAboutDescription = "We help teams ship marketing sites their editors actually enjoy updating."
	defaultStoryHeadline    = "Our story"
	defaultTeamHeadline     = "Meet the team"
	defaultTeamDescription  = "A small team obsessed with content workflows."
)

var defaultStats = []models.Stat{
	{Number: "10k+", Label: "Sites launched"},
	{Number: "99.9%", Label: "Uptime"},
	{Number: "120+", Label: "Countries"},
	{Number: "4.9/5", Label: "Customer rating"},
}

var defaultStoryItems = []models.StoryItem{
	{Number: "01", Title: "Founded", Description: "Started as a side project to make headless WordPress approachable."},
	{Number: "02", Title: "First customers", Description: "Agencies adopted the template for client marketing sites."},
	{Number: "03", Title: "Today", Description: "Powering marketing sites for teams of every size."},
}

var defaultTeamMembers = []TeamMemberView{
	{
		Name: "Sarah Chen",
		Role: "CEO & Founder",
		Bio:  "Former tech lead, passionate about developer experience.",
		Socials: []models.SocialLink{
			{Platform: "twitter", URL: "#"},
			{Platform: "linkedin", URL: "#"},
		},
	},
	{
		Name: "Marcus Johnson",
		Role: "CTO",
		Bio:  "Open source enthusiast and expert in headless CMS architectures.",
		Socials: []models.SocialLink{
			{Platform: "twitter", URL: "#"},
			{Platform: "github", URL: "#"},
		},
	},
	{
		Name: "Emily Rodriguez",
		Role: "Head of Design",
		Bio:  "Award-winning designer focused on accessible, beautiful interfaces.",
		Socials: []models.SocialLink{
			{Platform: "twitter", URL: "#"},
			{Platform: "linkedin", URL: "#"},
		},
	},
	{
		Name: "David Kim",
		Role: "Lead Developer",
		Bio:  "Full-stack engineer with a passion for performance optimization.",
		Socials: []models.SocialLink{
			{Platform: "github", URL: "#"},
			{Platform: "linkedin", URL: "#"},
		},
	},
}

const (
	defaultContactHeadline    = "Get in touch"
	defaultContactDescription = "Questions about plans, the product, or anything else? We answer within one business day."
	defaultContactEmail       = "hello@oatmeal.example"
	defaultContactPhone       = "+1 (555) 123-4567"
	defaultContactAddress     = "548 Market St, San Francisco, CA"
	defaultFormTitle          = "Send us a message"
	defaultFormDescription    = "Fill out the form and we will get back to you."
	defaultSuccessMessage     = "Thanks for reaching out! We'll be in touch soon."

	defaultBlogHeadline    = "Blog"
	defaultBlogDescription = "Latest news, tutorials, and insights about headless WordPress and modern web development."
)

var defaultPosts = []PostCardView{
	{
		Title:    "Getting started with headless WordPress",
		Excerpt:  "Learn how to connect a WordPress backend to a modern front-end. We'll cover setup, configuration, and best practices.",
		Slug:     "getting-started-headless-wordpress",
		Date:     "2026-02-10",
		Author:   "Sarah Chen",
		Category: "Tutorial",
	},
	{
		Title:    "Why headless WordPress is the future of content management",
		Excerpt:  "Discover the benefits of decoupling your front-end from WordPress. Learn how GraphQL and modern frameworks are changing the CMS landscape.",
		Slug:     "headless-wordpress-future-cms",
		Date:     "2026-02-08",
		Author:   "Marcus Johnson",
		Category: "Insights",
	},
	{
		Title:    "Building accessible marketing sites",
		Excerpt:  "Accessibility is crucial for modern websites. Learn how to implement semantic HTML and keyboard navigation in your marketing sites.",
		Slug:     "building-accessible-marketing-sites",
		Date:     "2026-02-05",
		Author:   "Emily Rodriguez",
		Category: "Tutorial",
	},
	{
		Title:    "The complete guide to WPGraphQL and custom post types",
		Excerpt:  "Master WPGraphQL by learning how to create custom post types and expose them in your GraphQL schema for headless WordPress sites.",
		Slug:     "complete-guide-wpgraphql-custom-post-types",
		Date:     "2026-01-30",
		Author:   "Marcus Johnson",
		Category: "Tutorial",
	},
}
