package shortcode

import (
	"strings"
	"text/template"

	"go.uber.org/zap"
)

// TemplateData is the value a TemplateHandler executes its template with.
type TemplateData struct {
	Name       string
	Content    string
	HasContent bool
	Attrs      Attributes
}

// TemplateHandler is a Handler backed by a text/template. It lets
// shortcodes be declared in configuration instead of Go code:
//
//	<audio {{.Attrs}}></audio>
//	<b>{{upper .Content}}</b>
//	<img src="{{.Attrs.GetDefault "src" "blank.png"}}">
//
// The template sees TemplateData and the functions upper, lower and trim.
// If execution fails the handler logs a warning and returns "".
type TemplateHandler struct {
	name   string
	tmpl   *template.Template
	logger *zap.Logger
}

// templateFuncs returns the functions available to shortcode templates
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		TemplateFuncUpper: strings.ToUpper,
		TemplateFuncLower: strings.ToLower,
		TemplateFuncTrim:  strings.TrimSpace,
	}
}

// NewTemplateHandler parses text as the template for the named shortcode.
// A nil logger disables logging.
func NewTemplateHandler(name string, text string, logger *zap.Logger) (*TemplateHandler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tmpl, err := template.New(name).Funcs(templateFuncs()).Parse(text)
	if err != nil {
		return nil, NewTemplateError(name, err)
	}
	return &TemplateHandler{
		name:   name,
		tmpl:   tmpl,
		logger: logger,
	}, nil
}

// Name returns the shortcode name the template was created for.
func (h *TemplateHandler) Name() string {
	return h.name
}

// Handle executes the template for one shortcode occurrence.
func (h *TemplateHandler) Handle(content Content, attrs Attributes) string {
	data := TemplateData{
		Name:       h.name,
		Content:    content.String(),
		HasContent: content.Present(),
		Attrs:      attrs,
	}

	var sb strings.Builder
	if err := h.tmpl.Execute(&sb, data); err != nil {
		h.logger.Warn(LogMsgTemplateFailed,
			zap.String(LogFieldTagName, h.name),
			zap.Error(err),
		)
		return ""
	}
	return sb.String()
}
