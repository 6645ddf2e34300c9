package shortcode

import (
	"strconv"
	"strings"
	"testing"
)

// =============================================================================
// RENDER BENCHMARKS
// =============================================================================

func newBenchEngine(opts ...Option) *Shortcode {
	sc := New(opts...)
	sc.AddFunc("audio", func(content Content, attrs Attributes) string {
		return "<audio " + attrs.String() + "></audio>"
	})
	sc.AddFunc("b", func(content Content, attrs Attributes) string {
		return "<b>" + content.String() + "</b>"
	})
	return sc
}

func BenchmarkRender_PlainText(b *testing.B) {
	sc := newBenchEngine()
	doc := strings.Repeat("plain prose without any tags at all. ", 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sc.Render(doc)
	}
}

func BenchmarkRender_SelfClosing(b *testing.B) {
	sc := newBenchEngine()
	doc := `This is a [audio class="audio" src='a.mp3' loop /] tag`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sc.Render(doc)
	}
}

func BenchmarkRender_Paired(b *testing.B) {
	sc := newBenchEngine()
	doc := `Intro [b]bold text[/b] outro`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sc.Render(doc)
	}
}

// Bracketed prose with no close tags; time per op should grow linearly
// with the repeat count.
func BenchmarkRender_FootnoteProse(b *testing.B) {
	for _, n := range []int{1000, 4000, 16000} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			sc := newBenchEngine()
			doc := strings.Repeat("see [1] and ", n)

			b.SetBytes(int64(len(doc)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = sc.Render(doc)
			}
		})
	}
}

func BenchmarkRender_ManyTags(b *testing.B) {
	sc := newBenchEngine()
	doc := strings.Repeat(`text [b]x[/b] [audio src="a"/] [unknown] `, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sc.Render(doc)
	}
}

func BenchmarkRender_Recursive(b *testing.B) {
	sc := newBenchEngine(WithRecursive(true))
	doc := strings.Repeat("[b]", 20) + "core" + strings.Repeat("[/b]", 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sc.Render(doc)
	}
}

func BenchmarkRender_Concurrent(b *testing.B) {
	sc := newBenchEngine()
	doc := strings.Repeat(`text [b]x[/b] [audio src="a"/] `, 10)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = sc.Render(doc)
		}
	})
}

// =============================================================================
// SCAN AND PARSE BENCHMARKS
// =============================================================================

func BenchmarkScan_ManyTags(b *testing.B) {
	sc := newBenchEngine()
	doc := strings.Repeat(`text [b]x[/b] [audio src="a"/] [unknown] `, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sc.Scan(doc)
	}
}

func BenchmarkParseAttributes(b *testing.B) {
	text := `class="audio" src='a.mp3' preload=none loop autoplay width = "100"`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ParseAttributes(text)
	}
}

func BenchmarkTemplateHandler(b *testing.B) {
	h, err := NewTemplateHandler("audio", "<audio {{.Attrs}}>{{upper .Content}}</audio>", nil)
	if err != nil {
		b.Fatal(err)
	}
	content := NewContent("caption")
	attrs := ParseAttributes(`class="audio" src="a.mp3" loop`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Handle(content, attrs)
	}
}
