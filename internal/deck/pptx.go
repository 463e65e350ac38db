package deck

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"slideforge/internal/summarizer"
)

// The deck is serialized as an OOXML presentation package (ECMA-376
// PresentationML): a zip of XML parts. Geometry is in EMUs on a 16:9
// 10in x 5.625in canvas.
const (
	emuPerInch     = 914400
	slideWidthEMU  = 10 * emuPerInch
	slideHeightEMU = 5143500
)

// Layout rules. Title slide: centered title at 40% vertical offset, centered
// description at 58%. Content slides: a centered title band at the top, then
// one fixed-height bulleted row per content string.
var (
	titleSlideTitle = boxStyle{x: 0, y: pctH(40), w: slideWidthEMU, h: inches(1), font: "Helvetica", sizePt: 33, bold: true, color: "003366", align: "ctr"}
	titleSlideDesc  = boxStyle{x: 0, y: pctH(58), w: slideWidthEMU, h: inches(0.75), font: "Helvetica", sizePt: 18, color: "888888", align: "ctr"}
	contentTitle    = boxStyle{x: inches(0.5), y: inches(0.5), w: inches(8.5), h: inches(1), font: "Arial", sizePt: 32, bold: true, color: "003366", align: "ctr"}
	contentBullet   = boxStyle{x: inches(1), y: 0, w: inches(8), h: inches(0.75), font: "Arial", sizePt: 15, color: "333333", align: "l", bullet: true}
)

const (
	bulletRowFirstY  = int64(1.8 * emuPerInch)
	bulletRowSpacing = int64(1.0 * emuPerInch)
)

type boxStyle struct {
	x, y, w, h int64
	font       string
	sizePt     int
	bold       bool
	color      string
	align      string
	bullet     bool
}

func inches(in float64) int64 { return int64(in * emuPerInch) }
func pctH(pct int) int64      { return int64(pct) * slideHeightEMU / 100 }

// writeDeck serializes the full presentation package to w.
func writeDeck(w io.Writer, td *summarizer.TitleAndDescription, slides []summarizer.SlideContent) error {
	zw := zip.NewWriter(w)

	type part struct {
		name    string
		content string
	}

	parts := []part{
		{"[Content_Types].xml", contentTypesXML(1 + len(slides))},
		{"_rels/.rels", rootRelsXML},
		{"docProps/core.xml", corePropsXML(td.Title)},
		{"docProps/app.xml", appPropsXML},
		{"ppt/presentation.xml", presentationXML(1 + len(slides))},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(1 + len(slides))},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
		{"ppt/slides/slide1.xml", titleSlideXML(td)},
	}

	for i, slide := range slides {
		parts = append(parts, part{fmt.Sprintf("ppt/slides/slide%d.xml", i+2), contentSlideXML(slide)})
	}

	for n := 1; n <= 1+len(slides); n++ {
		parts = append(parts, part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRelsXML})
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create part %s: %w", part.name, err)
		}
		if _, err := io.WriteString(f, part.content); err != nil {
			return fmt.Errorf("write part %s: %w", part.name, err)
		}
	}

	return zw.Close()
}

// titleSlideXML builds the cover slide: title and description centered on a
// white background.
func titleSlideXML(td *summarizer.TitleAndDescription) string {
	var shapes strings.Builder
	writeTextBox(&shapes, 2, titleSlideTitle, td.Title)
	writeTextBox(&shapes, 3, titleSlideDesc, td.Description)
	return slideXML(shapes.String(), true)
}

// contentSlideXML builds one content slide: a title band plus one bulleted
// row per content string, stacked in array order.
func contentSlideXML(slide summarizer.SlideContent) string {
	var shapes strings.Builder
	writeTextBox(&shapes, 2, contentTitle, slide.Title)
	for i, bullet := range slide.Content {
		style := contentBullet
		style.y = bulletRowFirstY + int64(i)*bulletRowSpacing
		writeTextBox(&shapes, 3+i, style, bullet)
	}
	return slideXML(shapes.String(), false)
}

func slideXML(shapes string, whiteBg bool) string {
	bg := ""
	if whiteBg {
		bg = `<p:bg><p:bgPr><a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`
	}
	return xmlHeader + `<p:sld ` + pmlNamespaces + `><p:cSld>` + bg +
		`<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>` +
		shapes +
		`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`
}

// writeTextBox emits one <p:sp> text-box shape.
func writeTextBox(b *strings.Builder, id int, style boxStyle, text string) {
	fmt.Fprintf(b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, id)
	fmt.Fprintf(b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`,
		style.x, style.y, style.w, style.h)

	b.WriteString(`<p:txBody><a:bodyPr wrap="square" anchor="t"/><a:lstStyle/><a:p>`)

	fmt.Fprintf(b, `<a:pPr algn="%s"`, style.align)
	if style.bullet {
		b.WriteString(` marL="228600" indent="-228600"><a:buFont typeface="Arial"/><a:buChar char="&#8226;"/></a:pPr>`)
	} else {
		b.WriteString(`><a:buNone/></a:pPr>`)
	}

	bold := ""
	if style.bold {
		bold = ` b="1"`
	}
	fmt.Fprintf(b, `<a:r><a:rPr lang="en-US" sz="%d"%s dirty="0"><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:latin typeface="%s"/></a:rPr><a:t>%s</a:t></a:r>`,
		style.sizePt*100, bold, style.color, style.font, escapeXML(text))

	b.WriteString(`</a:p></p:txBody></p:sp>`)
}

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)
