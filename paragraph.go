package ratatui

import "github.com/holo-q/ratatui-go/internal/ffi"

// Paragraph is a styled text block. Lines and spans accumulate natively;
// every mutator crosses the boundary immediately and returns the receiver
// for chaining.
type Paragraph struct {
	widget
}

// NewParagraph constructs a paragraph holding text as its first line.
func NewParagraph(text string) (*Paragraph, error) {
	w, err := newWidget("NewParagraph", ffi.WidgetParagraph, func(e engine) (ffi.Handle, error) {
		return e.ParagraphNew(text)
	})
	if err != nil {
		return nil, err
	}
	return &Paragraph{widget: w}, nil
}

// NewEmptyParagraph constructs a paragraph with no content.
func NewEmptyParagraph() (*Paragraph, error) {
	w, err := newWidget("NewEmptyParagraph", ffi.WidgetParagraph, func(e engine) (ffi.Handle, error) {
		return e.ParagraphNewEmpty()
	})
	if err != nil {
		return nil, err
	}
	return &Paragraph{widget: w}, nil
}

// AppendLine adds a full styled line.
func (p *Paragraph) AppendLine(text string, style Style) *Paragraph {
	if p.live() {
		p.eng.ParagraphAppendLine(p.handle, text, style)
	}
	return p
}

// AppendSpan adds a styled span to the current line.
func (p *Paragraph) AppendSpan(text string, style Style) *Paragraph {
	if p.live() {
		p.eng.ParagraphAppendSpan(p.handle, text, style)
	}
	return p
}

// LineBreak ends the current line.
func (p *Paragraph) LineBreak() *Paragraph {
	if p.live() {
		p.eng.ParagraphLineBreak(p.handle)
	}
	return p
}

// BlockTitle sets the surrounding block's title and border. An empty title
// with border true draws a plain border.
func (p *Paragraph) BlockTitle(title string, border bool) *Paragraph {
	if p.live() {
		p.eng.ParagraphSetBlockTitle(p.handle, title, border)
	}
	return p
}

// Align sets text alignment (AlignLeft, AlignCenter, AlignRight). No-op on
// native builds that predate the alignment symbol.
func (p *Paragraph) Align(align uint32) *Paragraph {
	if p.live() {
		p.eng.ParagraphSetAlignment(p.handle, align)
	}
	return p
}
