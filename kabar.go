// Package kabar extracts structured news articles from a news site's HTML.
// It harvests article URLs from the site's index page, fetches each article
// page and parses it into a normalized Article record.
//
// This package contains domain types, interfaces and the pure field
// normalizers. Implementations live in subdirectories named after their
// primary dependency (e.g., goquery/, http/, rod/).
package kabar
