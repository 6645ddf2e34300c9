// Package shortcode provides a WordPress-style shortcode engine: it finds
// bracket tags in a document, hands their attributes and content to
// registered handlers, and splices the handler output back in place.
//
// Shortcodes come in two forms:
//
// Self-closing tags: [name attr="value" /] (the slash is optional)
//
//	[audio src="song.mp3" loop /]
//
// Paired tags: [name attrs]content[/name]
//
//	[quote cite="Ada"]Hello[/quote]
//
// # Basic Usage
//
//	sc := shortcode.New()
//	sc.AddFunc("audio", func(content shortcode.Content, attrs shortcode.Attributes) string {
//	    return "<audio " + attrs.String() + "></audio>"
//	})
//	out := sc.Render(`This is a [audio class="audio"] tag`)
//	// out: `This is a <audio class="audio"></audio> tag`
//
// # Handlers
//
// A handler receives the inner content (absent for self-closing tags) and
// the attributes in document order. Attributes are absent only when the tag
// has no text after its name, as in [audio]; [audio /] carries an empty
// attribute list. Values may be double-quoted, single-quoted or bare, and a
// key without "=" is a flag.
//
// # Rendering Rules
//
// Render never fails. Unknown tag names, stray brackets and malformed
// attributes are copied to the output unchanged. Paired tags are matched by
// counting same-name nesting, so [a][a]x[/a][/a] pairs the first open with
// the last close. [[name]] escapes a registered tag and renders as [name].
//
// # Configuration
//
// Customize the engine with functional options:
//
//	sc := shortcode.New(
//	    shortcode.WithRecursive(true),
//	    shortcode.WithMaxDepth(10),
//	    shortcode.WithLogger(logger),
//	)
//
// or load a YAML configuration with template-backed shortcodes via
// LoadConfig and NewFromConfig.
package shortcode
