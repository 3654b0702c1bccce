package site

import (
	"reflect"
	"testing"
	"time"

	"github.com/inkwell-blog/inkwell/content"
)

func mkPost(title string, day int, tags ...string) content.Post {
	if tags == nil {
		tags = []string{}
	}
	return content.Post{
		FrontMatter: content.FrontMatter{
			Title: title,
			Date:  time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC),
			Tags:  tags,
		},
		Path: title + ".md",
		Slug: title + ".html",
	}
}

func titles(posts []content.Post) []string {
	r := make([]string, 0, len(posts))
	for _, p := range posts {
		r = append(r, p.Title)
	}
	return r
}

func TestSelectMaxPosts(t *testing.T) {
	// five posts, newest first, no tag filters: exactly the three most recent
	posts := []content.Post{
		mkPost("e", 5), mkPost("d", 4), mkPost("c", 3), mkPost("b", 2), mkPost("a", 1),
	}
	got := Filter{MaxPosts: 3}.Select(posts)
	want := []string{"e", "d", "c"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("Expected %v but got %v", want, titles(got))
	}
}

func TestSelectNoCap(t *testing.T) {
	posts := []content.Post{mkPost("b", 2), mkPost("a", 1)}
	got := Filter{}.Select(posts)
	if len(got) != 2 {
		t.Errorf("Expected all posts with no cap, got %d", len(got))
	}
}

func TestSelectIncludeTags(t *testing.T) {
	posts := []content.Post{
		mkPost("go-post", 3, "go"),
		mkPost("web-post", 2, "web"),
		mkPost("untagged", 1),
	}
	got := Filter{Tags: []string{"go", "web"}}.Select(posts)
	want := []string{"go-post", "web-post"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("Expected %v but got %v", want, titles(got))
	}
}

func TestSelectExcludeTags(t *testing.T) {
	posts := []content.Post{
		mkPost("keep", 3, "go"),
		mkPost("drop", 2, "meta"),
		mkPost("also-keep", 1),
	}
	got := Filter{ExcludeTags: []string{"meta"}}.Select(posts)
	want := []string{"keep", "also-keep"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("Expected %v but got %v", want, titles(got))
	}
}

func TestSelectExcludeWins(t *testing.T) {
	// a tag in both lists never surfaces
	posts := []content.Post{
		mkPost("both", 2, "meta"),
		mkPost("plain-go", 1, "go"),
	}
	got := Filter{Tags: []string{"meta", "go"}, ExcludeTags: []string{"meta"}}.Select(posts)
	want := []string{"plain-go"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("Expected %v but got %v", want, titles(got))
	}
}

func TestSelectCaseInsensitive(t *testing.T) {
	posts := []content.Post{mkPost("p", 1, "Go")}
	if got := (Filter{Tags: []string{"go"}}).Select(posts); len(got) != 1 {
		t.Error("Expected case-insensitive tag matching")
	}
	if got := (Filter{ExcludeTags: []string{"GO"}}).Select(posts); len(got) != 0 {
		t.Error("Expected case-insensitive exclusion")
	}
}

func TestTagSet(t *testing.T) {
	posts := []content.Post{
		mkPost("a", 3, "Go", "web"),
		mkPost("b", 2, "go", "auth"),
	}
	got := TagSet(posts)
	want := []string{"go", "web", "auth"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v but got %v", want, got)
	}
}
