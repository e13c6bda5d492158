package graphql

// Query catalog. One document per page/content type, each requesting
// exactly the fields its renderer needs. Fragments are composed by
// string concatenation the same way the WPGraphQL schema expects them.

const mediaItemFragment = `
fragment MediaItemFields on MediaItem {
  id
  databaseId
  altText
  caption
  sourceUrl
  mediaDetails {
    width
    height
  }
}
`

const authorFragment = `
fragment AuthorFields on User {
  id
  databaseId
  name
  firstName
  lastName
  description
  avatar {
    url
    width
    height
  }
}
`

const categoryFragment = `
fragment CategoryFields on Category {
  id
  databaseId
  name
  slug
  description
}
`

const postFragment = `
fragment PostFields on Post {
  id
  databaseId
  title
  slug
  uri
  content
  excerpt
  date
  modified
  status
  author {
    node {
      ...AuthorFields
    }
  }
  featuredImage {
    node {
      ...MediaItemFields
    }
  }
  categories {
    nodes {
      ...CategoryFields
    }
  }
  tags {
    nodes {
      id
      name
      slug
    }
  }
  seo {
    title
    metaDesc
    canonical
  }
}
` + authorFragment + mediaItemFragment + categoryFragment

const pageFragment = `
fragment PageFields on Page {
  id
  databaseId
  title
  slug
  uri
  content
  status
  modified
  featuredImage {
    node {
      ...MediaItemFields
    }
  }
  seo {
    title
    metaDesc
    canonical
  }
}
` + mediaItemFragment

const QueryGeneralSettings = `
query GetGeneralSettings {
  generalSettings {
    title
    description
    url
  }
}
`

const QueryPosts = `
query GetPosts($first: Int = 10, $after: String) {
  posts(first: $first, after: $after) {
    pageInfo {
      hasNextPage
      endCursor
    }
    nodes {
      ...PostFields
    }
  }
}
` + postFragment

const QueryPostBySlug = `
query GetPostBySlug($slug: ID!) {
  post(id: $slug, idType: SLUG) {
    ...PostFields
  }
}
` + postFragment

const QueryPages = `
query GetPages {
  pages {
    nodes {
      ...PageFields
    }
  }
}
` + pageFragment

const QueryPageBySlug = `
query GetPageBySlug($slug: ID!) {
  page(id: $slug, idType: URI) {
    ...PageFields
  }
}
` + pageFragment

const QueryMenuItems = `
query GetMenuItems($location: MenuLocationEnum!) {
  menuItems(where: { location: $location }, first: 100) {
    nodes {
      id
      databaseId
      label
      url
      path
      parentId
      cssClasses
    }
  }
}
`

const QuerySearchPosts = `
query SearchPosts($search: String!, $first: Int = 10) {
  posts(where: { search: $search }, first: $first) {
    nodes {
      ...PostFields
    }
  }
}
` + postFragment

const QueryCategories = `
query GetCategories {
  categories {
    nodes {
      ...CategoryFields
    }
  }
}
` + categoryFragment

const QueryPostsByCategory = `
query GetPostsByCategory($category: String!, $first: Int = 10) {
  posts(where: { categoryName: $category }, first: $first) {
    nodes {
      ...PostFields
    }
  }
}
` + postFragment

const QueryPreviewPost = `
query GetPreviewPost($id: ID!) {
  post(id: $id, idType: DATABASE_ID, asPreview: true) {
    ...PostFields
  }
}
` + postFragment

const QueryHomepageContent = `
query GetHomepageContent {
  page(id: "homepage", idType: URI) {
    id
    title
    homepageFields {
      heroHeadline
      heroSubheadline
      heroCtaText
      heroCtaLink {
        nodes {
          uri
        }
      }
      heroShowBadge
      featuresEyebrow
      featuresHeadline
      featuresDescription
      features {
        icon
        title
        description
        link
      }
      testimonialsHeadline
      testimonials {
        quote
        authorName
        authorTitle
        authorCompany
        avatar {
          node {
            sourceUrl
          }
        }
      }
    }
  }
}
`

const QueryPricingPageContent = `
query GetPricingPageContent {
  page(id: "pricing", idType: URI) {
    id
    title
    content
    pricingFields {
      heroHeadline
      heroDescription
      pricingTiers {
        name
        price
        period
        description
        highlighted
        features
        buttonText
        buttonLink {
          nodes {
            uri
          }
        }
      }
      faqHeadline
      faqs {
        question
        answer
      }
    }
  }
}
`

const QueryAboutPageContent = `
query GetAboutPageContent {
  page(id: "about", idType: URI) {
    id
    title
    content
    aboutFields {
      heroHeadline
      heroDescription
      stats {
        number
        label
      }
      storyHeadline
      storyItems {
        number
        title
        description
      }
      teamHeadline
      teamDescription
      teamMembers {
        name
        role
        bio
        photo {
          node {
            sourceUrl
          }
        }
        socialLinks {
          platform
          url
        }
      }
    }
  }
}
`

const QueryContactPageContent = `
query GetContactPageContent {
  page(id: "contact", idType: URI) {
    id
    title
    content
    contactFields {
      heroHeadline
      heroDescription
      contactInfo {
        email
        phone
        address
      }
      formTitle
      formDescription
      successMessage
    }
  }
}
`

const QuerySiteOptions = `
query GetSiteOptions {
  siteOptions {
    header {
      logo {
        node {
          ...MediaItemFields
        }
      }
      navigation {
        label
        url
        children {
          label
          url
        }
      }
    }
    footer {
      copyright
      socialLinks {
        platform
        url
        icon
      }
      footerColumns {
        title
        links {
          label
          url
        }
      }
    }
    seo {
      defaultTitle
      defaultDescription
      socialImage {
        node {
          ...MediaItemFields
        }
      }
    }
  }
}
` + mediaItemFragment

// QueryVerifyToken is the minimal identity check used to validate a
// preview bearer token before any cookie is issued.
const QueryVerifyToken = `
query VerifyToken {
  viewer {
    id
    name
  }
}
`
