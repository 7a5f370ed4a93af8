// Package pptx writes slide decks as PPTX (Office Open XML Presentation)
// packages and reads them back.
package pptx

import "encoding/xml"

// XML namespaces used in PPTX files.
const (
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels    = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// The types below are read-side mappings. Element names carry no namespace
// so that prefixed and default-namespace documents both match. They cover
// the parts Writer produces.

// presentationXML maps ppt/presentation.xml.
type presentationXML struct {
	XMLName     xml.Name        `xml:"presentation"`
	SlideIdList *slideIdListXML `xml:"sldIdLst"`
	SlideSz     *slideSzXML     `xml:"sldSz"`
}

type slideIdListXML struct {
	SlideId []slideIdXML `xml:"sldId"`
}

type slideIdXML struct {
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

type slideSzXML struct {
	Cx int `xml:"cx,attr"`
	Cy int `xml:"cy,attr"`
}

// slideXML maps a ppt/slides/slideN.xml part.
type slideXML struct {
	XMLName xml.Name `xml:"sld"`
	CSld    struct {
		SpTree spTreeXML `xml:"spTree"`
	} `xml:"cSld"`
}

type spTreeXML struct {
	Sp           []spXML           `xml:"sp"`
	Pic          []picXML          `xml:"pic"`
	GraphicFrame []graphicFrameXML `xml:"graphicFrame"`
}

type cNvPrXML struct {
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr"`
}

type spXML struct {
	NvSpPr struct {
		CNvPr cNvPrXML `xml:"cNvPr"`
		NvPr  struct {
			Ph *struct {
				Type string `xml:"type,attr"`
			} `xml:"ph"`
		} `xml:"nvPr"`
	} `xml:"nvSpPr"`
	SpPr   spPrXML    `xml:"spPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type spPrXML struct {
	Xfrm      *xfrmXML      `xml:"xfrm"`
	SolidFill *solidFillXML `xml:"solidFill"`
}

type solidFillXML struct {
	SrgbClr *struct {
		Val string `xml:"val,attr"`
	} `xml:"srgbClr"`
}

// hex returns the RRGGBB value of an sRGB fill, or "".
func (f *solidFillXML) hex() string {
	if f == nil || f.SrgbClr == nil {
		return ""
	}
	return f.SrgbClr.Val
}

type xfrmXML struct {
	Off struct {
		X int `xml:"x,attr"`
		Y int `xml:"y,attr"`
	} `xml:"off"`
	Ext struct {
		Cx int `xml:"cx,attr"`
		Cy int `xml:"cy,attr"`
	} `xml:"ext"`
}

// box returns position and size in EMUs; a missing transform is all zero.
func (x *xfrmXML) box() (left, top, width, height int) {
	if x == nil {
		return 0, 0, 0, 0
	}
	return x.Off.X, x.Off.Y, x.Ext.Cx, x.Ext.Cy
}

type txBodyXML struct {
	P []pXML `xml:"p"`
}

type pXML struct {
	PPr *struct {
		Algn string `xml:"algn,attr"`
	} `xml:"pPr"`
	R []struct {
		RPr *struct {
			Sz        int           `xml:"sz,attr"` // hundredths of a point
			B         *int          `xml:"b,attr"`
			SolidFill *solidFillXML `xml:"solidFill"`
		} `xml:"rPr"`
		T string `xml:"t"`
	} `xml:"r"`
}

type picXML struct {
	NvPicPr struct {
		CNvPr cNvPrXML `xml:"cNvPr"`
	} `xml:"nvPicPr"`
	BlipFill struct {
		Blip struct {
			Embed string `xml:"embed,attr"`
		} `xml:"blip"`
	} `xml:"blipFill"`
	SpPr spPrXML `xml:"spPr"`
}

type graphicFrameXML struct {
	NvGraphicFramePr struct {
		CNvPr cNvPrXML `xml:"cNvPr"`
	} `xml:"nvGraphicFramePr"`
	Xfrm    *xfrmXML `xml:"xfrm"`
	Graphic struct {
		GraphicData struct {
			Tbl *tblXML `xml:"tbl"`
		} `xml:"graphicData"`
	} `xml:"graphic"`
}

type tblXML struct {
	TblGrid struct {
		GridCol []struct{} `xml:"gridCol"`
	} `xml:"tblGrid"`
	Tr []struct {
		Tc []struct {
			TxBody *txBodyXML `xml:"txBody"`
			TcPr   *struct {
				SolidFill *solidFillXML `xml:"solidFill"`
			} `xml:"tcPr"`
		} `xml:"tc"`
	} `xml:"tr"`
}

// relationshipsXML maps a .rels part.
type relationshipsXML struct {
	Relationship []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// corePropertiesXML maps docProps/core.xml.
type corePropertiesXML struct {
	Title    string `xml:"title"`
	Subject  string `xml:"subject"`
	Creator  string `xml:"creator"`
	Keywords string `xml:"keywords"`
	Created  string `xml:"created"`
}

// appPropertiesXML maps docProps/app.xml.
type appPropertiesXML struct {
	Application string `xml:"Application"`
}
