package progress

import (
	"fmt"
	"regexp"
)

// Порядок попыток важен: watch-ссылка, короткая ссылка, embed
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([^&]+)`),
	regexp.MustCompile(`youtu\.be/([^?]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^?]+)`),
}

// ExtractVideoID достаёт идентификатор видео из известных форм YouTube-ссылок.
// Для нераспознанной ссылки возвращает пустую строку.
func ExtractVideoID(url string) string {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// ThumbnailURL строит адрес превью по ссылке на видео. Нераспознанная ссылка
// даёт пустое превью, а не ошибку записи.
func ThumbnailURL(url string) string {
	id := ExtractVideoID(url)
	if id == "" {
		return ""
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id)
}
