package sitefs

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/inkwell-blog/inkwell/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description,omitempty"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// newFeedFile generates the RSS 2.0 feed from the post collection, newest
// first. It is only reachable when the site configuration enables the feed.
func (vfs *FS) newFeedFile(name string) (fs.File, error) {
	posts, err := content.Scan(vfs.fs, content.CollectionDir)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	base := strings.TrimSuffix(vfs.cfg.SiteURL, "/")
	items := make([]rssItem, 0, len(posts))
	var maxTime time.Time
	for _, p := range posts {
		postURL := base + "/" + p.Slug
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Description,
			PubDate:     p.Date.Format(time.RFC1123Z),
			GUID:        postURL,
		})
		if p.Date.After(maxTime) {
			maxTime = p.Date
		}
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       vfs.cfg.Title,
			Link:        base,
			Description: vfs.cfg.Description,
			Items:       items,
		},
	}
	b, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	if maxTime.IsZero() {
		maxTime = time.Now()
	}
	return newMemFile(name, append([]byte(xml.Header), b...), maxTime), nil
}
