// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package api

import (
	"fmt"
	"html"
	"strings"

	"github.com/zfatbt/tenufa/internal/news/post"
)

// metaDescriptionLimit keeps injected descriptions preview-sized.
const metaDescriptionLimit = 200

// metaTags renders the Open Graph and Twitter card tags for an article.
//
// WhatsApp and Facebook crawlers never execute the client bundle, so these
// tags are the only way shared article links get a title and image.
func metaTags(article *post.Post, canonicalURL string) string {
	title := html.EscapeString(article.Title)
	description := html.EscapeString(shareDescription(article))
	url := html.EscapeString(canonicalURL)

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("<title>%s</title>\n", title))
	builder.WriteString(fmt.Sprintf(`<meta property="og:title" content="%s">`+"\n", title))
	builder.WriteString(fmt.Sprintf(`<meta property="og:description" content="%s">`+"\n", description))
	builder.WriteString(fmt.Sprintf(`<meta property="og:url" content="%s">`+"\n", url))
	builder.WriteString(`<meta property="og:type" content="article">` + "\n")

	if article.ImageURL != "" {
		image := html.EscapeString(article.ImageURL)
		builder.WriteString(fmt.Sprintf(`<meta property="og:image" content="%s">`+"\n", image))
		builder.WriteString(`<meta name="twitter:card" content="summary_large_image">` + "\n")
		builder.WriteString(fmt.Sprintf(`<meta name="twitter:image" content="%s">`+"\n", image))
	} else {
		builder.WriteString(`<meta name="twitter:card" content="summary">` + "\n")
	}

	builder.WriteString(fmt.Sprintf(`<meta name="twitter:title" content="%s">`+"\n", title))
	builder.WriteString(fmt.Sprintf(`<meta name="description" content="%s">`+"\n", description))

	return builder.String()
}

// shareDescription picks the excerpt, falling back to truncated content.
func shareDescription(article *post.Post) string {
	if article.Excerpt != "" {
		return article.Excerpt
	}

	content := strings.TrimSpace(article.Content)
	runes := []rune(content)
	if len(runes) <= metaDescriptionLimit {
		return content
	}
	return string(runes[:metaDescriptionLimit]) + "…"
}
