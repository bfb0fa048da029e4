package mock

import (
	"context"

	"github.com/fwojciec/kabar"
)

var _ kabar.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of kabar.ArticleWriter.
type ArticleWriter struct {
	WriteArticlesFn func(ctx context.Context, articles []*kabar.Article) error
}

func (w *ArticleWriter) WriteArticles(ctx context.Context, articles []*kabar.Article) error {
	return w.WriteArticlesFn(ctx, articles)
}
