package commands

// elementKeywords maps elements to their clear text keywords (ISO/IEC
// 8632-4 Annex A). Incremental forms share the element of their absolute
// form and are not listed.
var elementKeywords = map[Element]string{
	{0, 1}:  "BEGMF",
	{0, 2}:  "ENDMF",
	{0, 3}:  "BEGPIC",
	{0, 4}:  "BEGPICBODY",
	{0, 5}:  "ENDPIC",
	{0, 6}:  "BEGSEG",
	{0, 7}:  "ENDSEG",
	{0, 8}:  "BEGFIGURE",
	{0, 9}:  "ENDFIGURE",
	{0, 13}: "BEGPROTREGION",
	{0, 14}: "ENDPROTREGION",
	{0, 15}: "BEGCOMPOLINE",
	{0, 16}: "ENDCOMPOLINE",
	{0, 17}: "BEGCOMPTEXTPATH",
	{0, 18}: "ENDCOMPTEXTPATH",
	{0, 19}: "BEGTILEARRAY",
	{0, 20}: "ENDTILEARRAY",
	{0, 21}: "BEGAPS",
	{0, 22}: "BEGAPSBODY",
	{0, 23}: "ENDAPS",
	{1, 1}:  "MFVERSION",
	{1, 2}:  "MFDESC",
	{1, 3}:  "VDCTYPE",
	{1, 4}:  "INTEGERPREC",
	{1, 5}:  "REALPREC",
	{1, 6}:  "INDEXPREC",
	{1, 7}:  "COLRPREC",
	{1, 8}:  "COLRINDEXPREC",
	{1, 9}:  "MAXCOLRINDEX",
	{1, 10}: "COLRVALUEEXT",
	{1, 11}: "MFELEMLIST",
	{1, 12}: "BEGMFDEFAULTS",
	{1, 13}: "FONTLIST",
	{1, 14}: "CHARSETLIST",
	{1, 15}: "CHARCODING",
	{1, 16}: "NAMEPREC",
	{1, 17}: "MAXVDCEXT",
	{1, 18}: "SEGPRIEXT",
	{1, 19}: "COLRMODEL",
	{2, 1}:  "SCALEMODE",
	{2, 2}:  "COLRMODE",
	{2, 3}:  "LINEWIDTHMODE",
	{2, 4}:  "MARKERSIZEMODE",
	{2, 5}:  "EDGEWIDTHMODE",
	{2, 6}:  "VDCEXT",
	{2, 7}:  "BACKCOLR",
	{2, 8}:  "DEVVP",
	{2, 9}:  "DEVVPMODE",
	{2, 10}: "DEVVPMAP",
	{2, 16}: "INTSTYLEMODE",
	{2, 17}: "LINEEDGETYPEDEF",
	{2, 18}: "HATCHSTYLEDEF",
	{2, 19}: "GEOPATDEF",
	{3, 1}:  "VDCINTEGERPREC",
	{3, 2}:  "VDCREALPREC",
	{3, 3}:  "AUXCOLR",
	{3, 4}:  "TRANSPARENCY",
	{3, 5}:  "CLIPRECT",
	{3, 6}:  "CLIP",
	{3, 7}:  "LINECLIPMODE",
	{3, 8}:  "MARKERCLIPMODE",
	{3, 9}:  "EDGECLIPMODE",
	{3, 10}: "NEWREGION",
	{3, 11}: "SAVEPRIMCONT",
	{3, 12}: "RESPRIMCONT",
	{3, 17}: "PROTREGION",
	{3, 18}: "GENTEXTPATHMODE",
	{3, 19}: "MITRELIMIT",
	{4, 1}:  "LINE",
	{4, 2}:  "DISJTLINE",
	{4, 3}:  "MARKER",
	{4, 4}:  "TEXT",
	{4, 5}:  "RESTRTEXT",
	{4, 6}:  "APNDTEXT",
	{4, 7}:  "POLYGON",
	{4, 8}:  "POLYGONSET",
	{4, 9}:  "CELLARRAY",
	{4, 10}: "GDP",
	{4, 11}: "RECT",
	{4, 12}: "CIRCLE",
	{4, 13}: "ARC3PT",
	{4, 14}: "ARC3PTCLOSE",
	{4, 15}: "ARCCTR",
	{4, 16}: "ARCCTRCLOSE",
	{4, 17}: "ELLIPSE",
	{4, 18}: "ELLIPARC",
	{4, 19}: "ELLIPARCCLOSE",
	{4, 21}: "CONNEDGE",
	{4, 24}: "NUB",
	{4, 25}: "NURB",
	{4, 26}: "POLYBEZIER",
	{5, 1}:  "LINEINDEX",
	{5, 2}:  "LINETYPE",
	{5, 3}:  "LINEWIDTH",
	{5, 4}:  "LINECOLR",
	{5, 5}:  "MARKERINDEX",
	{5, 6}:  "MARKERTYPE",
	{5, 7}:  "MARKERSIZE",
	{5, 8}:  "MARKERCOLR",
	{5, 9}:  "TEXTINDEX",
	{5, 10}: "TEXTFONTINDEX",
	{5, 11}: "TEXTPREC",
	{5, 12}: "CHAREXPAN",
	{5, 13}: "CHARSPACE",
	{5, 14}: "TEXTCOLR",
	{5, 15}: "CHARHEIGHT",
	{5, 16}: "CHARORI",
	{5, 17}: "TEXTPATH",
	{5, 18}: "TEXTALIGN",
	{5, 19}: "CHARSETINDEX",
	{5, 20}: "ALTCHARSETINDEX",
	{5, 21}: "FILLINDEX",
	{5, 22}: "INTSTYLE",
	{5, 23}: "FILLCOLR",
	{5, 24}: "HATCHINDEX",
	{5, 25}: "PATINDEX",
	{5, 26}: "EDGEINDEX",
	{5, 27}: "EDGETYPE",
	{5, 28}: "EDGEWIDTH",
	{5, 29}: "EDGECOLR",
	{5, 30}: "EDGEVIS",
	{5, 31}: "FILLREFPT",
	{5, 32}: "PATTABLE",
	{5, 33}: "PATSIZE",
	{5, 34}: "COLRTABLE",
	{5, 37}: "LINECAP",
	{5, 38}: "LINEJOIN",
	{5, 39}: "LINETYPECONT",
	{5, 40}: "LINETYPEINITOFFSET",
	{5, 44}: "EDGECAP",
	{5, 45}: "EDGEJOIN",
	{5, 46}: "EDGETYPECONT",
	{5, 47}: "EDGETYPEINITOFFSET",
	{6, 1}:  "ESCAPE",
	{7, 1}:  "MESSAGE",
	{7, 2}:  "APPLDATA",
	{9, 1}:  "APSATTR",
}

// Keyword returns the clear text keyword of an element
func Keyword(e Element) (string, bool) {
	keyword, ok := elementKeywords[e]
	return keyword, ok
}
