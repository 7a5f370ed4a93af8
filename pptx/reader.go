package pptx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/tsawler/htmldeck/model"
)

var (
	// ErrNoSlides is returned by Open for a package without any slide.
	ErrNoSlides = errors.New("no slides found in presentation")
	// ErrMissingPart is returned when a part the package refers to is absent.
	ErrMissingPart = errors.New("missing package part")
)

const presentationPart = "ppt/presentation.xml"

// Reader reads back a presentation package.
type Reader struct {
	zr     *zip.ReadCloser
	parts  map[string]*zip.File
	size   *slideSzXML
	slides []*Slide
	core   corePropertiesXML
	app    appPropertiesXML
}

// Open opens a PPTX file. Slides are read in presentation order.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{zr: zr, parts: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		r.parts[f.Name] = f
	}
	if err := r.load(); err != nil {
		zr.Close()
		return nil, err
	}
	return r, nil
}

// Close releases the underlying archive.
func (r *Reader) Close() error {
	if r.zr == nil {
		return nil
	}
	err := r.zr.Close()
	r.zr = nil
	return err
}

func (r *Reader) load() error {
	if _, ok := r.parts["[Content_Types].xml"]; !ok {
		return fmt.Errorf("%w: [Content_Types].xml", ErrMissingPart)
	}

	var pres presentationXML
	if err := r.decode(presentationPart, &pres); err != nil {
		return fmt.Errorf("parsing presentation: %w", err)
	}
	r.size = pres.SlideSz
	if pres.SlideIdList == nil || len(pres.SlideIdList.SlideId) == 0 {
		return ErrNoSlides
	}

	targets, err := r.relationships(presentationPart)
	if err != nil {
		return fmt.Errorf("parsing presentation relationships: %w", err)
	}
	for i, id := range pres.SlideIdList.SlideId {
		name, ok := targets[id.RID]
		if !ok {
			return fmt.Errorf("%w: slide %d has no relationship %q", ErrMissingPart, i+1, id.RID)
		}
		slide, err := r.parseSlide(name, i)
		if err != nil {
			return fmt.Errorf("parsing slide %d: %w", i+1, err)
		}
		r.slides = append(r.slides, slide)
	}

	// Document properties are optional.
	_ = r.decode("docProps/core.xml", &r.core)
	_ = r.decode("docProps/app.xml", &r.app)
	return nil
}

// read returns the bytes of a package part.
func (r *Reader) read(name string) ([]byte, error) {
	f, ok := r.parts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (r *Reader) decode(name string, v any) error {
	data, err := r.read(name)
	if err != nil {
		return err
	}
	return xml.Unmarshal(data, v)
}

// relationships maps the relationship ids of part to package paths. A part
// without a .rels file has none.
func (r *Reader) relationships(part string) (map[string]string, error) {
	relsPath := path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
	if _, ok := r.parts[relsPath]; !ok {
		return map[string]string{}, nil
	}
	var rels relationshipsXML
	if err := r.decode(relsPath, &rels); err != nil {
		return nil, err
	}
	targets := make(map[string]string, len(rels.Relationship))
	for _, rel := range rels.Relationship {
		targets[rel.ID] = path.Join(path.Dir(part), rel.Target)
	}
	return targets, nil
}

func (r *Reader) parseSlide(name string, index int) (*Slide, error) {
	var sx slideXML
	if err := r.decode(name, &sx); err != nil {
		return nil, err
	}
	targets, err := r.relationships(name)
	if err != nil {
		return nil, err
	}

	slide := &Slide{Index: index}
	tree := &sx.CSld.SpTree
	for i := range tree.Sp {
		block, ok := textBlock(&tree.Sp[i])
		if !ok {
			continue
		}
		if block.IsTitle && slide.Title == "" {
			slide.Title = block.Text
		}
		slide.Content = append(slide.Content, block)
	}
	for i := range tree.GraphicFrame {
		gf := &tree.GraphicFrame[i]
		if gf.Graphic.GraphicData.Tbl == nil {
			continue
		}
		t := table(gf.Graphic.GraphicData.Tbl)
		t.Name = gf.NvGraphicFramePr.CNvPr.Name
		t.X, t.Y, t.Width, t.Height = gf.Xfrm.box()
		slide.Tables = append(slide.Tables, t)
	}
	for i := range tree.Pic {
		pic := &tree.Pic[i]
		p := Picture{
			Name:   pic.NvPicPr.CNvPr.Name,
			Descr:  pic.NvPicPr.CNvPr.Descr,
			Target: targets[pic.BlipFill.Blip.Embed],
		}
		p.X, p.Y, p.Width, p.Height = pic.SpPr.Xfrm.box()
		slide.Pictures = append(slide.Pictures, p)
	}
	return slide, nil
}

// textBlock converts a shape with visible text. Empty paragraphs are
// dropped.
func textBlock(sp *spXML) (TextBlock, bool) {
	if sp.TxBody == nil {
		return TextBlock{}, false
	}
	block := TextBlock{
		Name: sp.NvSpPr.CNvPr.Name,
		Fill: sp.SpPr.SolidFill.hex(),
	}
	if ph := sp.NvSpPr.NvPr.Ph; ph != nil {
		block.Placeholder = ph.Type
		block.IsTitle = ph.Type == "title" || ph.Type == "ctrTitle"
		block.IsSubtitle = ph.Type == "subTitle"
	}
	block.X, block.Y, block.Width, block.Height = sp.SpPr.Xfrm.box()

	var lines []string
	for i := range sp.TxBody.P {
		para := paragraph(&sp.TxBody.P[i])
		if para.Text == "" {
			continue
		}
		block.Paragraphs = append(block.Paragraphs, para)
		lines = append(lines, para.Text)
	}
	block.Text = strings.Join(lines, "\n")
	return block, block.Text != ""
}

func paragraph(p *pXML) Paragraph {
	var para Paragraph
	if p.PPr != nil {
		para.Alignment = p.PPr.Algn
	}
	var sb strings.Builder
	for _, rx := range p.R {
		sb.WriteString(rx.T)
		run := Run{Text: rx.T}
		if rx.RPr != nil {
			run.Bold = rx.RPr.B != nil && *rx.RPr.B == 1
			run.FontSize = rx.RPr.Sz
			run.Color = rx.RPr.SolidFill.hex()
		}
		para.Runs = append(para.Runs, run)
	}
	para.Text = strings.TrimSpace(sb.String())
	return para
}

func table(tbl *tblXML) Table {
	t := Table{Columns: len(tbl.TblGrid.GridCol)}
	for _, tr := range tbl.Tr {
		row := make([]TableCell, 0, len(tr.Tc))
		for _, tc := range tr.Tc {
			var cell TableCell
			if tc.TcPr != nil {
				cell.Fill = tc.TcPr.SolidFill.hex()
			}
			if tc.TxBody != nil {
				var texts []string
				for i := range tc.TxBody.P {
					if s := paragraph(&tc.TxBody.P[i]).Text; s != "" {
						texts = append(texts, s)
					}
				}
				cell.Text = strings.Join(texts, " ")
			}
			row = append(row, cell)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// SlideCount returns the number of slides.
func (r *Reader) SlideCount() int {
	return len(r.slides)
}

// Slide returns the slide at index, counting from zero.
func (r *Reader) Slide(index int) (*Slide, error) {
	if index < 0 || index >= len(r.slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(r.slides)-1)
	}
	return r.slides[index], nil
}

// Media returns the bytes of a package part such as a Picture's Target.
func (r *Reader) Media(target string) ([]byte, error) {
	if r.zr == nil {
		return nil, errors.New("reader is closed")
	}
	return r.read(target)
}

// Markdown renders the slides as a Markdown deck, one section per slide
// separated by thematic breaks.
func (r *Reader) Markdown() (string, error) {
	sections := make([]string, len(r.slides))
	for i, s := range r.slides {
		sections[i] = strings.TrimSpace(s.Markdown())
	}
	return strings.Join(sections, "\n\n---\n\n"), nil
}

// Metadata returns the document properties.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{
		Title:   r.core.Title,
		Author:  r.core.Creator,
		Subject: r.core.Subject,
		Creator: r.app.Application,
	}
	for _, kw := range strings.Split(r.core.Keywords, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			meta.Keywords = append(meta.Keywords, kw)
		}
	}
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(r.core.Created)); err == nil {
		meta.CreationDate = t
	}
	return meta
}

// SlideSize returns the slide width and height, or zero when the
// presentation does not declare them.
func (r *Reader) SlideSize() (width, height model.Length) {
	if r.size == nil {
		return 0, 0
	}
	return model.Length(r.size.Cx), model.Length(r.size.Cy)
}

// Document rebuilds positioned pages from the slides. Text shapes come back
// as text boxes, tables with their cell text and pictures with their bytes.
func (r *Reader) Document() (*model.Document, error) {
	doc := model.NewDocument()
	doc.Metadata = r.Metadata()
	width, height := r.SlideSize()

	for _, slide := range r.slides {
		page := model.NewPage(width, height)

		for _, block := range slide.Content {
			tb := &model.TextBox{
				Name:        block.Name,
				BBox:        emuBox(block.X, block.Y, block.Width, block.Height),
				Placeholder: model.Placeholder(block.Placeholder),
			}
			for _, para := range block.Paragraphs {
				p := model.Paragraph{Alignment: alignmentOf(para.Alignment)}
				for _, run := range para.Runs {
					p.Runs = append(p.Runs, model.Run{Text: run.Text, Style: model.TextStyle{
						Size: float64(run.FontSize) / 100,
						Bold: run.Bold,
					}})
				}
				tb.Text.Paragraphs = append(tb.Text.Paragraphs, p)
			}
			page.AddElement(tb)
		}

		for _, table := range slide.Tables {
			t := &model.Table{
				Name: table.Name,
				BBox: emuBox(table.X, table.Y, table.Width, table.Height),
			}
			for i, row := range table.Rows {
				cells := make([]model.Cell, len(row))
				for j, cell := range row {
					cells[j] = model.Cell{Text: cell.Text, IsHeader: i == 0}
				}
				t.Rows = append(t.Rows, cells)
			}
			page.AddElement(t)
		}

		for _, pic := range slide.Pictures {
			img := &model.Image{
				BBox:    emuBox(pic.X, pic.Y, pic.Width, pic.Height),
				Source:  pic.Target,
				AltText: pic.Descr,
				Format:  formatOf(pic.Target),
			}
			if pic.Target != "" {
				data, err := r.Media(pic.Target)
				if err != nil {
					return nil, fmt.Errorf("slide %d: %w", slide.Index+1, err)
				}
				img.Data = data
			}
			page.AddElement(img)
		}

		doc.AddPage(page)
	}

	return doc, nil
}

func emuBox(x, y, w, h int) model.BBox {
	return model.NewBBox(model.Length(x), model.Length(y), model.Length(w), model.Length(h))
}

func alignmentOf(algn string) model.TextAlignment {
	switch algn {
	case "ctr":
		return model.AlignCenter
	case "r":
		return model.AlignRight
	default:
		return model.AlignLeft
	}
}

// formatOf guesses an image format from its part name.
func formatOf(name string) model.ImageFormat {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return model.ImageFormatPNG
	case ".jpg", ".jpeg":
		return model.ImageFormatJPEG
	case ".gif":
		return model.ImageFormatGIF
	case ".bmp":
		return model.ImageFormatBMP
	case ".tif", ".tiff":
		return model.ImageFormatTIFF
	default:
		return model.ImageFormatUnknown
	}
}
