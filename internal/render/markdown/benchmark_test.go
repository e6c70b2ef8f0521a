package markdown

import (
	"strings"
	"testing"
)

func BenchmarkWrap_LongComment(b *testing.B) {
	paragraph := "Saved comments tend to be long-winded, with the occasional quote and list sprinkled in between the prose."
	text := strings.Join([]string{
		paragraph,
		"> " + paragraph,
		"- " + paragraph + "\n-- " + paragraph,
		"    func main() {}",
		paragraph,
	}, "\n\n")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Wrap(text, 78)
	}
}
