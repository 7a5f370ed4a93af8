package pptx

import "encoding/xml"

// Namespaces and relationship types written by the Writer.
const (
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCoreProps     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtendedProps = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsDocPropsVT    = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
	nsDC            = "http://purl.org/dc/elements/1.1/"
	nsDCTerms       = "http://purl.org/dc/terms/"
	nsDCMIType      = "http://purl.org/dc/dcmitype/"
	nsXSI           = "http://www.w3.org/2001/XMLSchema-instance"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	relPresProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	relViewProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	relTableStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"

	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps    = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps    = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles  = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtendedProp = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctRelationship = "application/vnd.openxmlformats-package.relationships+xml"

	uriTable = "http://schemas.openxmlformats.org/drawingml/2006/table"
)

// xmlHeader precedes every XML part.
const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// xmlTypes directly maps the [Content_Types].xml part.
type xmlTypes struct {
	XMLName   xml.Name      `xml:"Types"`
	XMLNS     string        `xml:"xmlns,attr"`
	Defaults  []xmlDefault  `xml:"Default"`
	Overrides []xmlOverride `xml:"Override"`
}

type xmlDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// xmlRelationships directly maps a .rels part.
type xmlRelationships struct {
	XMLName       xml.Name          `xml:"Relationships"`
	XMLNS         string            `xml:"xmlns,attr"`
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// xmlCoreProperties directly maps docProps/core.xml.
type xmlCoreProperties struct {
	XMLName        xml.Name   `xml:"cp:coreProperties"`
	XMLNSCp        string     `xml:"xmlns:cp,attr"`
	XMLNSDc        string     `xml:"xmlns:dc,attr"`
	XMLNSDcterms   string     `xml:"xmlns:dcterms,attr"`
	XMLNSDcmitype  string     `xml:"xmlns:dcmitype,attr"`
	XMLNSXsi       string     `xml:"xmlns:xsi,attr"`
	Title          string     `xml:"dc:title,omitempty"`
	Subject        string     `xml:"dc:subject,omitempty"`
	Creator        string     `xml:"dc:creator,omitempty"`
	Keywords       string     `xml:"cp:keywords,omitempty"`
	LastModifiedBy string     `xml:"cp:lastModifiedBy,omitempty"`
	Created        *xmlW3CDTF `xml:"dcterms:created"`
	Modified       *xmlW3CDTF `xml:"dcterms:modified"`
}

type xmlW3CDTF struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// xmlAppProperties directly maps docProps/app.xml.
type xmlAppProperties struct {
	XMLName            xml.Name `xml:"Properties"`
	XMLNS              string   `xml:"xmlns,attr"`
	XMLNSVt            string   `xml:"xmlns:vt,attr"`
	Application        string   `xml:"Application"`
	PresentationFormat string   `xml:"PresentationFormat"`
	Slides             int      `xml:"Slides"`
	Notes              int      `xml:"Notes"`
}

// xmlPresentation directly maps ppt/presentation.xml.
type xmlPresentation struct {
	XMLName         xml.Name          `xml:"p:presentation"`
	XMLNSa          string            `xml:"xmlns:a,attr"`
	XMLNSr          string            `xml:"xmlns:r,attr"`
	XMLNSp          string            `xml:"xmlns:p,attr"`
	SaveSubsetFonts int               `xml:"saveSubsetFonts,attr"`
	SldMasterIDLst  xmlSldMasterIDLst `xml:"p:sldMasterIdLst"`
	SldIDLst        *xmlSldIDLst      `xml:"p:sldIdLst"`
	SldSz           xmlSldSz          `xml:"p:sldSz"`
	NotesSz         xmlSize           `xml:"p:notesSz"`
}

type xmlSldMasterIDLst struct {
	SldMasterID []xmlSldMasterID `xml:"p:sldMasterId"`
}

type xmlSldMasterID struct {
	ID  uint32 `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type xmlSldIDLst struct {
	SldID []xmlSldID `xml:"p:sldId"`
}

type xmlSldID struct {
	ID  int    `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type xmlSldSz struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

// xmlSlide directly maps ppt/slides/slideN.xml.
type xmlSlide struct {
	XMLName   xml.Name     `xml:"p:sld"`
	XMLNSa    string       `xml:"xmlns:a,attr"`
	XMLNSr    string       `xml:"xmlns:r,attr"`
	XMLNSp    string       `xml:"xmlns:p,attr"`
	CSld      xmlCSld      `xml:"p:cSld"`
	ClrMapOvr xmlClrMapOvr `xml:"p:clrMapOvr"`
}

type xmlCSld struct {
	SpTree xmlSpTree `xml:"p:spTree"`
}

type xmlClrMapOvr struct {
	MasterClrMapping struct{} `xml:"a:masterClrMapping"`
}

// xmlSpTree holds the slide's shapes. Children are *xmlShape, *xmlPicture
// or *xmlGraphicFrame, back to front.
type xmlSpTree struct {
	NvGrpSpPr xmlNvGrpSpPr `xml:"p:nvGrpSpPr"`
	GrpSpPr   xmlGrpSpPr   `xml:"p:grpSpPr"`
	Children  []any        `xml:",any"`
}

type xmlNvGrpSpPr struct {
	CNvPr      xmlCNvPr `xml:"p:cNvPr"`
	CNvGrpSpPr struct{} `xml:"p:cNvGrpSpPr"`
	NvPr       xmlNvPr  `xml:"p:nvPr"`
}

type xmlGrpSpPr struct {
	Xfrm xmlGroupXfrm `xml:"a:xfrm"`
}

type xmlGroupXfrm struct {
	Off   xmlPoint `xml:"a:off"`
	Ext   xmlSize  `xml:"a:ext"`
	ChOff xmlPoint `xml:"a:chOff"`
	ChExt xmlSize  `xml:"a:chExt"`
}

type xmlCNvPr struct {
	ID    int    `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr,omitempty"`
}

type xmlNvPr struct {
	Ph *xmlPh `xml:"p:ph"`
}

type xmlPh struct {
	Type string `xml:"type,attr,omitempty"`
}

type xmlPoint struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type xmlSize struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type xmlXfrm struct {
	Off xmlPoint `xml:"a:off"`
	Ext xmlSize  `xml:"a:ext"`
}

// xmlShape directly maps p:sp, used for rectangles and text boxes.
type xmlShape struct {
	XMLName xml.Name   `xml:"p:sp"`
	NvSpPr  xmlNvSpPr  `xml:"p:nvSpPr"`
	SpPr    xmlSpPr    `xml:"p:spPr"`
	TxBody  *xmlTxBody `xml:"p:txBody"`
}

type xmlNvSpPr struct {
	CNvPr   xmlCNvPr   `xml:"p:cNvPr"`
	CNvSpPr xmlCNvSpPr `xml:"p:cNvSpPr"`
	NvPr    xmlNvPr    `xml:"p:nvPr"`
}

type xmlCNvSpPr struct {
	TxBox int `xml:"txBox,attr,omitempty"`
}

type xmlSpPr struct {
	Xfrm      xmlXfrm       `xml:"a:xfrm"`
	PrstGeom  xmlPrstGeom   `xml:"a:prstGeom"`
	NoFill    *struct{}     `xml:"a:noFill"`
	SolidFill *xmlSolidFill `xml:"a:solidFill"`
	Ln        *xmlLine      `xml:"a:ln"`
}

type xmlPrstGeom struct {
	Prst  string   `xml:"prst,attr"`
	AvLst struct{} `xml:"a:avLst"`
}

type xmlSolidFill struct {
	SrgbClr xmlColor `xml:"a:srgbClr"`
}

type xmlColor struct {
	Val string `xml:"val,attr"`
}

type xmlLine struct {
	W         int64         `xml:"w,attr,omitempty"`
	SolidFill *xmlSolidFill `xml:"a:solidFill"`
}

type xmlTxBody struct {
	BodyPr   xmlBodyPr      `xml:"a:bodyPr"`
	LstStyle struct{}       `xml:"a:lstStyle"`
	P        []xmlParagraph `xml:"a:p"`
}

type xmlBodyPr struct {
	Wrap   string `xml:"wrap,attr,omitempty"`
	RtlCol string `xml:"rtlCol,attr,omitempty"`
	Anchor string `xml:"anchor,attr,omitempty"`
}

type xmlParagraph struct {
	PPr        *xmlPPr  `xml:"a:pPr"`
	R          []xmlRun `xml:"a:r"`
	EndParaRPr *xmlRPr  `xml:"a:endParaRPr"`
}

type xmlPPr struct {
	Algn string `xml:"algn,attr,omitempty"`
}

type xmlRun struct {
	RPr xmlRPr `xml:"a:rPr"`
	T   string `xml:"a:t"`
}

type xmlRPr struct {
	Lang      string        `xml:"lang,attr,omitempty"`
	Sz        int           `xml:"sz,attr,omitempty"`
	B         int           `xml:"b,attr,omitempty"`
	Dirty     string        `xml:"dirty,attr,omitempty"`
	SolidFill *xmlSolidFill `xml:"a:solidFill"`
}

// xmlPicture directly maps p:pic.
type xmlPicture struct {
	XMLName  xml.Name    `xml:"p:pic"`
	NvPicPr  xmlNvPicPr  `xml:"p:nvPicPr"`
	BlipFill xmlBlipFill `xml:"p:blipFill"`
	SpPr     xmlSpPr     `xml:"p:spPr"`
}

type xmlNvPicPr struct {
	CNvPr    xmlCNvPr    `xml:"p:cNvPr"`
	CNvPicPr xmlCNvPicPr `xml:"p:cNvPicPr"`
	NvPr     xmlNvPr     `xml:"p:nvPr"`
}

type xmlCNvPicPr struct {
	PicLocks xmlPicLocks `xml:"a:picLocks"`
}

type xmlPicLocks struct {
	NoChangeAspect int `xml:"noChangeAspect,attr"`
}

type xmlBlipFill struct {
	Blip    xmlBlip    `xml:"a:blip"`
	Stretch xmlStretch `xml:"a:stretch"`
}

type xmlBlip struct {
	Embed string `xml:"r:embed,attr"`
}

type xmlStretch struct {
	FillRect struct{} `xml:"a:fillRect"`
}

// xmlGraphicFrame directly maps p:graphicFrame holding a table.
type xmlGraphicFrame struct {
	XMLName          xml.Name            `xml:"p:graphicFrame"`
	NvGraphicFramePr xmlNvGraphicFramePr `xml:"p:nvGraphicFramePr"`
	Xfrm             xmlXfrm             `xml:"p:xfrm"`
	Graphic          xmlGraphic          `xml:"a:graphic"`
}

type xmlNvGraphicFramePr struct {
	CNvPr             xmlCNvPr             `xml:"p:cNvPr"`
	CNvGraphicFramePr xmlCNvGraphicFramePr `xml:"p:cNvGraphicFramePr"`
	NvPr              xmlNvPr              `xml:"p:nvPr"`
}

type xmlCNvGraphicFramePr struct {
	GraphicFrameLocks xmlGraphicFrameLocks `xml:"a:graphicFrameLocks"`
}

type xmlGraphicFrameLocks struct {
	NoGrp int `xml:"noGrp,attr"`
}

type xmlGraphic struct {
	GraphicData xmlGraphicData `xml:"a:graphicData"`
}

type xmlGraphicData struct {
	URI string   `xml:"uri,attr"`
	Tbl xmlTable `xml:"a:tbl"`
}

type xmlTable struct {
	TblPr   xmlTblPr   `xml:"a:tblPr"`
	TblGrid xmlTblGrid `xml:"a:tblGrid"`
	Tr      []xmlRow   `xml:"a:tr"`
}

type xmlTblPr struct {
	FirstRow int `xml:"firstRow,attr,omitempty"`
	BandRow  int `xml:"bandRow,attr,omitempty"`
}

type xmlTblGrid struct {
	GridCol []xmlGridCol `xml:"a:gridCol"`
}

type xmlGridCol struct {
	W int64 `xml:"w,attr"`
}

type xmlRow struct {
	H  int64     `xml:"h,attr"`
	Tc []xmlCell `xml:"a:tc"`
}

type xmlCell struct {
	TxBody xmlTxBody `xml:"a:txBody"`
	TcPr   xmlTcPr   `xml:"a:tcPr"`
}

type xmlTcPr struct {
	Anchor    string        `xml:"anchor,attr,omitempty"`
	SolidFill *xmlSolidFill `xml:"a:solidFill"`
}
