package report

import (
	"strings"

	"github.com/tsawler/cgminfo/commands"
)

// PrintVisitor records selected commands into the *Report passed as the
// visitor context. Unsupported and unlisted commands are ignored.
type PrintVisitor struct {
	commands.NopVisitor
}

func reportOf(ctx any) *Report {
	return ctx.(*Report)
}

func (PrintVisitor) VisitBeginMetafile(c *commands.BeginMetafile, ctx any) {
	r := reportOf(ctx)
	r.Add("Metafile", "%s - %s", r.FileName, c.Name)
	r.BeginLevel()
}

func (PrintVisitor) VisitEndMetafile(c *commands.EndMetafile, ctx any) {
	reportOf(ctx).EndLevel()
}

func (PrintVisitor) VisitMetafileVersion(c *commands.MetafileVersion, ctx any) {
	reportOf(ctx).Add("Metafile Version", "%d", c.Version)
}

func (PrintVisitor) VisitMetafileDescription(c *commands.MetafileDescription, ctx any) {
	reportOf(ctx).Add("Metafile Description", "%s", c.Description)
}

func (PrintVisitor) VisitVdcType(c *commands.VdcType, ctx any) {
	reportOf(ctx).Add("VDC Type", "%s", c.Specification)
}

func (PrintVisitor) VisitIntegerPrecision(c *commands.IntegerPrecision, ctx any) {
	reportOf(ctx).Add("Integer Precision", "%d bit", c.Precision)
}

func (PrintVisitor) VisitRealPrecision(c *commands.RealPrecision, ctx any) {
	reportOf(ctx).Add("Real Precision", "%s", c.Specification)
}

func (PrintVisitor) VisitIndexPrecision(c *commands.IndexPrecision, ctx any) {
	reportOf(ctx).Add("Index Precision", "%d bit", c.Precision)
}

func (PrintVisitor) VisitColorPrecision(c *commands.ColorPrecision, ctx any) {
	reportOf(ctx).Add("Colour Precision", "%d bit", c.Precision)
}

func (PrintVisitor) VisitColorIndexPrecision(c *commands.ColorIndexPrecision, ctx any) {
	reportOf(ctx).Add("Colour Index Precision", "%d bit", c.Precision)
}

func (PrintVisitor) VisitMaximumColorIndex(c *commands.MaximumColorIndex, ctx any) {
	reportOf(ctx).Add("Maximum Colour Index", "%d", c.Index)
}

func (PrintVisitor) VisitColorModel(c *commands.ColorModel, ctx any) {
	reportOf(ctx).Add("Colour Model", "%s", c.Model)
}

func (PrintVisitor) VisitMetafileElementList(c *commands.MetafileElementList, ctx any) {
	reportOf(ctx).Add("Metafile Element List", "%s", strings.Join(c.Elements, " "))
}

func (PrintVisitor) VisitFontList(c *commands.FontList, ctx any) {
	reportOf(ctx).Add("Font List", "%s", strings.Join(c.Fonts, ", "))
}

func (PrintVisitor) VisitBeginPicture(c *commands.BeginPicture, ctx any) {
	r := reportOf(ctx)
	r.Add("Picture", "%s", c.Name)
	r.BeginLevel()
}

func (PrintVisitor) VisitEndPicture(c *commands.EndPicture, ctx any) {
	reportOf(ctx).EndLevel()
}

func (PrintVisitor) VisitVdcExtent(c *commands.VdcExtent, ctx any) {
	reportOf(ctx).Add("VDC Extent", "%s %s", c.FirstCorner, c.SecondCorner)
}

func (PrintVisitor) VisitText(c *commands.Text, ctx any) {
	reportOf(ctx).Add("Text", "%s", c.Text)
}

func (PrintVisitor) VisitRestrictedText(c *commands.RestrictedText, ctx any) {
	reportOf(ctx).Add("Restricted Text", "%s", c.Text)
}

func (PrintVisitor) VisitAppendText(c *commands.AppendText, ctx any) {
	reportOf(ctx).Add("Append Text", "%s", c.Text)
}

func (PrintVisitor) VisitMessage(c *commands.Message, ctx any) {
	reportOf(ctx).Add("Message", "%s", c.Message)
}
