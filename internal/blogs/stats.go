package blogs

import "github.com/okoskela/bloglist-server/internal/models"

// AuthorBlogs pairs an author with how many blogs they have written.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes pairs an author with the likes across all their blogs.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums the likes of all blogs.
func TotalLikes(blogs []models.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for an
// empty list. Ties keep the earlier blog.
func FavoriteBlog(blogs []models.Blog) *models.Blog {
	if len(blogs) == 0 {
		return nil
	}
	favorite := &blogs[0]
	for i := range blogs {
		if blogs[i].Likes > favorite.Likes {
			favorite = &blogs[i]
		}
	}
	return favorite
}

// MostBlogs returns the author with the most blogs, or nil for an
// empty list.
func MostBlogs(blogs []models.Blog) *AuthorBlogs {
	if len(blogs) == 0 {
		return nil
	}
	counts := map[string]int{}
	for _, b := range blogs {
		counts[b.Author]++
	}
	top := blogs[0].Author
	for author, n := range counts {
		if n > counts[top] {
			top = author
		}
	}
	return &AuthorBlogs{Author: top, Blogs: counts[top]}
}

// MostLikes returns the author whose blogs have the most combined
// likes, or nil for an empty list.
func MostLikes(blogs []models.Blog) *AuthorLikes {
	if len(blogs) == 0 {
		return nil
	}
	likes := map[string]int{}
	for _, b := range blogs {
		likes[b.Author] += b.Likes
	}
	top := blogs[0].Author
	for author, n := range likes {
		if n > likes[top] {
			top = author
		}
	}
	return &AuthorLikes{Author: top, Likes: likes[top]}
}
