package pptx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/tsawler/htmldeck/model"
)

// ErrFinalized is returned when a Writer is used after Save or WriteTo.
var ErrFinalized = errors.New("pptx: writer already finalized")

// First ids handed out in presentation.xml.
const (
	firstSlideID  = 256
	slideMasterID = 2147483648
)

// Writer assembles positioned pages into a PPTX package.
//
// A Writer has a single owner: AddPage, SetMetadata and the finalizing call
// must not run concurrently. The package is finalized exactly once, by
// either Save or WriteTo.
type Writer struct {
	width, height model.Length
	metadata      model.Metadata
	slides        []slidePart
	media         []mediaPart
	finalized     bool
}

// slidePart is a marshalled slide and its relationships.
type slidePart struct {
	data []byte
	rels []xmlRelationship
}

// mediaPart is an embedded image, numbered across the whole deck.
type mediaPart struct {
	name   string // ppt/media/imageN.ext
	ext    string
	data   []byte
	format model.ImageFormat
}

// NewWriter creates a writer for slides of the given size.
func NewWriter(width, height model.Length) *Writer {
	return &Writer{width: width, height: height}
}

// SetMetadata sets the document properties written to docProps.
func (w *Writer) SetMetadata(meta model.Metadata) {
	w.metadata = meta
}

// PageCount returns the number of slides added so far.
func (w *Writer) PageCount() int {
	return len(w.slides)
}

// AddPage appends page as the next slide. Elements are written back to
// front in the page's element order.
func (w *Writer) AddPage(page *model.Page) error {
	if w.finalized {
		return ErrFinalized
	}
	if page == nil {
		return fmt.Errorf("pptx: nil page")
	}

	number := len(w.slides) + 1
	b := &slideBuilder{w: w, nextID: 2}
	b.rels = append(b.rels, xmlRelationship{
		ID:     "rId1",
		Type:   relSlideLayout,
		Target: "../slideLayouts/slideLayout1.xml",
	})

	for _, elem := range page.Elements {
		if err := b.add(elem); err != nil {
			return fmt.Errorf("pptx: slide %d: %w", number, err)
		}
	}

	slide := xmlSlide{
		XMLNSa: nsDrawingML,
		XMLNSr: nsRelationships,
		XMLNSp: nsPresentationML,
		CSld: xmlCSld{SpTree: xmlSpTree{
			NvGrpSpPr: xmlNvGrpSpPr{CNvPr: xmlCNvPr{ID: 1}},
			Children:  b.children,
		}},
	}
	data, err := marshalPart(slide)
	if err != nil {
		return fmt.Errorf("pptx: slide %d: %w", number, err)
	}

	// Media is only committed once the whole slide has been built.
	w.media = append(w.media, b.media...)
	w.slides = append(w.slides, slidePart{data: data, rels: b.rels})
	return nil
}

// slideBuilder converts one page's elements into shape tree children.
type slideBuilder struct {
	w        *Writer
	nextID   int
	pictures int
	children []any
	rels     []xmlRelationship
	media    []mediaPart
}

func (b *slideBuilder) id() int {
	id := b.nextID
	b.nextID++
	return id
}

func (b *slideBuilder) add(elem model.Element) error {
	switch e := elem.(type) {
	case *model.Shape:
		b.children = append(b.children, b.shape(e))
	case *model.TextBox:
		b.children = append(b.children, b.textBox(e))
	case *model.Image:
		pic, err := b.picture(e)
		if err != nil {
			return err
		}
		b.children = append(b.children, pic)
	case *model.Table:
		b.children = append(b.children, b.table(e))
	default:
		return fmt.Errorf("unsupported element %T", elem)
	}
	return nil
}

func (b *slideBuilder) shape(s *model.Shape) *xmlShape {
	sp := &xmlShape{
		NvSpPr: xmlNvSpPr{
			CNvPr: xmlCNvPr{ID: b.id(), Name: s.Name},
			NvPr:  nvPr(s.Placeholder),
		},
		SpPr: xmlSpPr{
			Xfrm:     xfrm(s.BBox),
			PrstGeom: xmlPrstGeom{Prst: "rect"},
		},
	}
	if s.Fill != nil {
		sp.SpPr.SolidFill = solidFill(*s.Fill)
	} else {
		sp.SpPr.NoFill = &struct{}{}
	}
	if s.Line != nil {
		sp.SpPr.Ln = &xmlLine{W: int64(s.Line.Width), SolidFill: solidFill(s.Line.Color)}
	}
	if s.Text != nil {
		sp.TxBody = textBody(s.Text, "square")
	}
	return sp
}

func (b *slideBuilder) textBox(t *model.TextBox) *xmlShape {
	sp := &xmlShape{
		NvSpPr: xmlNvSpPr{
			CNvPr: xmlCNvPr{ID: b.id(), Name: t.Name},
			NvPr:  nvPr(t.Placeholder),
		},
		SpPr: xmlSpPr{
			Xfrm:     xfrm(t.BBox),
			PrstGeom: xmlPrstGeom{Prst: "rect"},
			NoFill:   &struct{}{},
		},
		TxBody: textBody(&t.Text, "square"),
	}
	if t.Placeholder == model.PlaceholderNone {
		sp.NvSpPr.CNvSpPr.TxBox = 1
	}
	return sp
}

func (b *slideBuilder) picture(img *model.Image) (*xmlPicture, error) {
	ext := img.Format.Extension()
	if ext == "" {
		return nil, fmt.Errorf("image %q: unknown format", img.Source)
	}

	n := len(b.w.media) + len(b.media) + 1
	name := fmt.Sprintf("image%d.%s", n, ext)
	rid := fmt.Sprintf("rId%d", len(b.rels)+1)
	b.rels = append(b.rels, xmlRelationship{ID: rid, Type: relImage, Target: "../media/" + name})
	b.media = append(b.media, mediaPart{
		name:   "ppt/media/" + name,
		ext:    ext,
		data:   img.Data,
		format: img.Format,
	})

	b.pictures++
	return &xmlPicture{
		NvPicPr: xmlNvPicPr{
			CNvPr: xmlCNvPr{
				ID:    b.id(),
				Name:  fmt.Sprintf("Picture %d", b.pictures),
				Descr: img.AltText,
			},
			CNvPicPr: xmlCNvPicPr{PicLocks: xmlPicLocks{NoChangeAspect: 1}},
		},
		BlipFill: xmlBlipFill{Blip: xmlBlip{Embed: rid}},
		SpPr: xmlSpPr{
			Xfrm:     xfrm(img.BBox),
			PrstGeom: xmlPrstGeom{Prst: "rect"},
		},
	}, nil
}

func (b *slideBuilder) table(t *model.Table) *xmlGraphicFrame {
	tbl := xmlTable{TblPr: xmlTblPr{FirstRow: 1, BandRow: 1}}
	for _, w := range t.Columns {
		tbl.TblGrid.GridCol = append(tbl.TblGrid.GridCol, xmlGridCol{W: int64(w)})
	}

	for i, row := range t.Rows {
		tr := xmlRow{H: int64(rowHeight(t, i))}
		for _, cell := range row {
			frame := &model.TextFrame{}
			for _, line := range strings.Split(cell.Text, "\n") {
				frame.AddParagraph(line, cell.Style.TextStyle, cell.Style.Alignment)
			}
			tr.Tc = append(tr.Tc, xmlCell{
				TxBody: *textBody(frame, ""),
				TcPr: xmlTcPr{
					Anchor:    "ctr",
					SolidFill: solidFill(cell.Style.BackgroundColor),
				},
			})
		}
		tbl.Tr = append(tbl.Tr, tr)
	}

	name := t.Name
	if name == "" {
		name = "Table"
	}
	return &xmlGraphicFrame{
		NvGraphicFramePr: xmlNvGraphicFramePr{
			CNvPr: xmlCNvPr{ID: b.id(), Name: name},
			CNvGraphicFramePr: xmlCNvGraphicFramePr{
				GraphicFrameLocks: xmlGraphicFrameLocks{NoGrp: 1},
			},
		},
		Xfrm: xfrm(t.BBox),
		Graphic: xmlGraphic{GraphicData: xmlGraphicData{
			URI: uriTable,
			Tbl: tbl,
		}},
	}
}

// rowHeight returns the height of row i, spreading the table height evenly
// when the table carries no per-row heights.
func rowHeight(t *model.Table, i int) model.Length {
	if i < len(t.Heights) && t.Heights[i] > 0 {
		return t.Heights[i]
	}
	if len(t.Rows) == 0 {
		return 0
	}
	return t.BBox.Height / model.Length(len(t.Rows))
}

func nvPr(ph model.Placeholder) xmlNvPr {
	if ph == model.PlaceholderNone {
		return xmlNvPr{}
	}
	return xmlNvPr{Ph: &xmlPh{Type: string(ph)}}
}

func xfrm(b model.BBox) xmlXfrm {
	return xmlXfrm{
		Off: xmlPoint{X: int64(b.X), Y: int64(b.Y)},
		Ext: xmlSize{Cx: int64(b.Width), Cy: int64(b.Height)},
	}
}

func solidFill(c model.Color) *xmlSolidFill {
	return &xmlSolidFill{SrgbClr: xmlColor{Val: c.Hex()}}
}

// textBody converts a frame. An empty paragraph keeps only its end
// properties so the line still takes up space.
func textBody(f *model.TextFrame, wrap string) *xmlTxBody {
	body := &xmlTxBody{BodyPr: xmlBodyPr{Wrap: wrap, Anchor: anchor(f.Anchor)}}
	if wrap != "" {
		body.BodyPr.RtlCol = "0"
	}

	for _, p := range f.Paragraphs {
		xp := xmlParagraph{}
		if algn := alignment(p.Alignment); algn != "" {
			xp.PPr = &xmlPPr{Algn: algn}
		}
		for _, r := range p.Runs {
			if r.Text == "" {
				continue
			}
			xp.R = append(xp.R, xmlRun{RPr: runProps(r.Style), T: r.Text})
		}
		if len(xp.R) == 0 {
			end := xmlRPr{Lang: "en-US", Dirty: "0"}
			if len(p.Runs) > 0 {
				end.Sz = fontSize(p.Runs[0].Style.Size)
			}
			xp.EndParaRPr = &end
		}
		body.P = append(body.P, xp)
	}
	if len(body.P) == 0 {
		body.P = []xmlParagraph{{EndParaRPr: &xmlRPr{Lang: "en-US", Dirty: "0"}}}
	}
	return body
}

func runProps(s model.TextStyle) xmlRPr {
	rpr := xmlRPr{
		Lang:      "en-US",
		Sz:        fontSize(s.Size),
		Dirty:     "0",
		SolidFill: solidFill(s.Color),
	}
	if s.Bold {
		rpr.B = 1
	}
	return rpr
}

// fontSize converts points to hundredths of a point.
func fontSize(pt float64) int {
	return int(pt*100 + 0.5)
}

func alignment(a model.TextAlignment) string {
	switch a {
	case model.AlignCenter:
		return "ctr"
	case model.AlignRight:
		return "r"
	default:
		return "l"
	}
}

func anchor(a model.Anchor) string {
	switch a {
	case model.AnchorMiddle:
		return "ctr"
	case model.AnchorBottom:
		return "b"
	default:
		return "t"
	}
}

// WriteTo finalizes the package and writes it to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	if w.finalized {
		return 0, ErrFinalized
	}
	w.finalized = true

	parts, err := w.parts()
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: dst}
	zw := zip.NewWriter(cw)
	for _, part := range parts {
		if err := writeEntry(zw, part.name, part.data); err != nil {
			return cw.n, fmt.Errorf("pptx: write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("pptx: close package: %w", err)
	}
	return cw.n, nil
}

// Save finalizes the package into the file at path, replacing it. A
// partially written file is removed on failure.
func (w *Writer) Save(path string) error {
	if w.finalized {
		return ErrFinalized
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pptx: create %s: %w", path, err)
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("pptx: close %s: %w", path, err)
	}
	return nil
}

type packagePart struct {
	name string
	data []byte
}

// parts lists every package entry in write order.
func (w *Writer) parts() ([]packagePart, error) {
	var (
		parts []packagePart
		err   error
	)
	add := func(name string, v any) {
		if err != nil {
			return
		}
		var data []byte
		if data, err = marshalPart(v); err != nil {
			err = fmt.Errorf("pptx: marshal %s: %w", name, err)
			return
		}
		parts = append(parts, packagePart{name, data})
	}
	raw := func(name, data string) {
		parts = append(parts, packagePart{name, []byte(data)})
	}

	add("[Content_Types].xml", w.contentTypes())
	add("_rels/.rels", xmlRelationships{
		XMLNS: nsPackageRels,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relOfficeDocument, Target: "ppt/presentation.xml"},
			{ID: "rId2", Type: relCoreProps, Target: "docProps/core.xml"},
			{ID: "rId3", Type: relExtendedProps, Target: "docProps/app.xml"},
		},
	})
	add("docProps/app.xml", w.appProperties())
	add("docProps/core.xml", w.coreProperties())
	add("ppt/presentation.xml", w.presentation())
	add("ppt/_rels/presentation.xml.rels", w.presentationRels())
	raw("ppt/presProps.xml", presPropsXML)
	raw("ppt/viewProps.xml", viewPropsXML)
	raw("ppt/tableStyles.xml", tableStylesXML)
	raw("ppt/theme/theme1.xml", themeXML)
	raw("ppt/slideMasters/slideMaster1.xml", slideMasterXML)
	add("ppt/slideMasters/_rels/slideMaster1.xml.rels", xmlRelationships{
		XMLNS: nsPackageRels,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
			{ID: "rId2", Type: relTheme, Target: "../theme/theme1.xml"},
		},
	})
	raw("ppt/slideLayouts/slideLayout1.xml", slideLayoutXML)
	add("ppt/slideLayouts/_rels/slideLayout1.xml.rels", xmlRelationships{
		XMLNS: nsPackageRels,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
		},
	})

	for i, s := range w.slides {
		parts = append(parts, packagePart{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), s.data})
		add(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), xmlRelationships{
			XMLNS:         nsPackageRels,
			Relationships: s.rels,
		})
	}
	for _, m := range w.media {
		parts = append(parts, packagePart{m.name, m.data})
	}
	return parts, err
}

func (w *Writer) contentTypes() xmlTypes {
	types := xmlTypes{
		XMLNS: nsContentTypes,
		Defaults: []xmlDefault{
			{Extension: "rels", ContentType: ctRelationship},
			{Extension: "xml", ContentType: "application/xml"},
		},
	}

	seen := make(map[string]string)
	for _, m := range w.media {
		seen[m.ext] = m.format.ContentType()
	}
	exts := make([]string, 0, len(seen))
	for ext := range seen {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	for _, ext := range exts {
		types.Defaults = append(types.Defaults, xmlDefault{Extension: ext, ContentType: seen[ext]})
	}

	types.Overrides = []xmlOverride{
		{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
		{PartName: "/ppt/slideMasters/slideMaster1.xml", ContentType: ctSlideMaster},
		{PartName: "/ppt/slideLayouts/slideLayout1.xml", ContentType: ctSlideLayout},
		{PartName: "/ppt/theme/theme1.xml", ContentType: ctTheme},
		{PartName: "/ppt/presProps.xml", ContentType: ctPresProps},
		{PartName: "/ppt/viewProps.xml", ContentType: ctViewProps},
		{PartName: "/ppt/tableStyles.xml", ContentType: ctTableStyles},
		{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
		{PartName: "/docProps/app.xml", ContentType: ctExtendedProp},
	}
	for i := range w.slides {
		types.Overrides = append(types.Overrides, xmlOverride{
			PartName:    fmt.Sprintf("/ppt/slides/slide%d.xml", i+1),
			ContentType: ctSlide,
		})
	}
	return types
}

func (w *Writer) presentation() xmlPresentation {
	p := xmlPresentation{
		XMLNSa:          nsDrawingML,
		XMLNSr:          nsRelationships,
		XMLNSp:          nsPresentationML,
		SaveSubsetFonts: 1,
		SldMasterIDLst: xmlSldMasterIDLst{
			SldMasterID: []xmlSldMasterID{{ID: slideMasterID, RID: "rId1"}},
		},
		SldSz:   xmlSldSz{Cx: int64(w.width), Cy: int64(w.height)},
		NotesSz: xmlSize{Cx: int64(w.height), Cy: int64(w.width)},
	}
	if len(w.slides) > 0 {
		p.SldIDLst = &xmlSldIDLst{}
		for i := range w.slides {
			p.SldIDLst.SldID = append(p.SldIDLst.SldID, xmlSldID{
				ID:  firstSlideID + i,
				RID: fmt.Sprintf("rId%d", i+2),
			})
		}
	}
	return p
}

// presentationRels numbers the master rId1, slides from rId2, then the
// shared parts.
func (w *Writer) presentationRels() xmlRelationships {
	rels := xmlRelationships{XMLNS: nsPackageRels}
	rels.Relationships = append(rels.Relationships, xmlRelationship{
		ID: "rId1", Type: relSlideMaster, Target: "slideMasters/slideMaster1.xml",
	})
	for i := range w.slides {
		rels.Relationships = append(rels.Relationships, xmlRelationship{
			ID:     fmt.Sprintf("rId%d", i+2),
			Type:   relSlide,
			Target: fmt.Sprintf("slides/slide%d.xml", i+1),
		})
	}
	next := len(w.slides) + 2
	for _, r := range []struct{ typ, target string }{
		{relTheme, "theme/theme1.xml"},
		{relPresProps, "presProps.xml"},
		{relViewProps, "viewProps.xml"},
		{relTableStyles, "tableStyles.xml"},
	} {
		rels.Relationships = append(rels.Relationships, xmlRelationship{
			ID: fmt.Sprintf("rId%d", next), Type: r.typ, Target: r.target,
		})
		next++
	}
	return rels
}

func (w *Writer) coreProperties() xmlCoreProperties {
	meta := w.metadata
	core := xmlCoreProperties{
		XMLNSCp:        nsCoreProps,
		XMLNSDc:        nsDC,
		XMLNSDcterms:   nsDCTerms,
		XMLNSDcmitype:  nsDCMIType,
		XMLNSXsi:       nsXSI,
		Title:          meta.Title,
		Subject:        meta.Subject,
		Creator:        meta.Author,
		Keywords:       strings.Join(meta.Keywords, ", "),
		LastModifiedBy: meta.Author,
	}
	// No clock reads: an undated document stays byte-stable.
	if !meta.CreationDate.IsZero() {
		stamp := &xmlW3CDTF{Type: "dcterms:W3CDTF", Value: meta.CreationDate.UTC().Format(time.RFC3339)}
		core.Created = stamp
		core.Modified = stamp
	}
	return core
}

func (w *Writer) appProperties() xmlAppProperties {
	app := w.metadata.Creator
	if app == "" {
		app = "htmldeck"
	}
	format := "Custom"
	if w.width*9 == w.height*16 {
		format = "Widescreen"
	}
	return xmlAppProperties{
		XMLNS:              nsExtendedProps,
		XMLNSVt:            nsDocPropsVT,
		Application:        app,
		PresentationFormat: format,
		Slides:             len(w.slides),
	}
}

func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xmlHeader), data...), nil
}

// writeEntry stores one deflated entry with no timestamp.
func writeEntry(zw *zip.Writer, name string, data []byte) error {
	fw, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return err
	}
	_, err = fw.Write(data)
	return err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
