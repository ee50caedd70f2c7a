package dom

// wellKnownPrefixes maps namespace URIs used by WordprocessingML packages to
// their conventional prefixes. The parser only consults this table when a URI
// cannot be resolved through an in-scope xmlns declaration, which in practice
// means the predeclared xml: namespace and parts that rely on a consumer
// knowing the conventional binding.
var wellKnownPrefixes = map[string]string{
	"http://www.w3.org/XML/1998/namespace":                                    "xml",
	"http://schemas.openxmlformats.org/wordprocessingml/2006/main":            "w",
	"http://schemas.openxmlformats.org/officeDocument/2006/relationships":     "r",
	"http://schemas.openxmlformats.org/officeDocument/2006/math":              "m",
	"http://schemas.openxmlformats.org/markup-compatibility/2006":             "mc",
	"http://schemas.openxmlformats.org/drawingml/2006/main":                   "a",
	"http://schemas.openxmlformats.org/drawingml/2006/picture":                "pic",
	"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing":  "wp",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing":     "wp14",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas":      "wpc",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingGroup":       "wpg",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingInk":         "wpi",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingShape":       "wps",
	"http://schemas.microsoft.com/office/word/2006/wordml":                    "wne",
	"http://schemas.microsoft.com/office/word/2010/wordml":                    "w14",
	"http://schemas.microsoft.com/office/word/2012/wordml":                    "w15",
	"http://schemas.microsoft.com/office/word/2018/wordml":                    "w16",
	"http://schemas.microsoft.com/office/word/2018/wordml/cex":                "w16cex",
	"http://schemas.microsoft.com/office/word/2016/wordml/cid":                "w16cid",
	"http://schemas.microsoft.com/office/word/2023/wordml/word16du":           "w16du",
	"http://schemas.microsoft.com/office/word/2020/wordml/sdtdatahash":        "w16sdtdh",
	"http://schemas.microsoft.com/office/word/2024/wordml/sdtformatlock":      "w16sdtfl",
	"http://schemas.microsoft.com/office/word/2015/wordml/symex":              "w16se",
	"http://schemas.microsoft.com/office/drawing/2010/main":                   "a14",
	"http://schemas.microsoft.com/office/drawing/2014/chartex":                "cx",
	"http://schemas.microsoft.com/office/drawing/2015/9/8/chartex":            "cx1",
	"http://schemas.microsoft.com/office/drawing/2015/10/21/chartex":          "cx2",
	"http://schemas.microsoft.com/office/drawing/2016/5/9/chartex":            "cx3",
	"http://schemas.microsoft.com/office/drawing/2016/5/10/chartex":           "cx4",
	"http://schemas.microsoft.com/office/drawing/2016/5/11/chartex":           "cx5",
	"http://schemas.microsoft.com/office/drawing/2016/5/12/chartex":           "cx6",
	"http://schemas.microsoft.com/office/drawing/2016/5/13/chartex":           "cx7",
	"http://schemas.microsoft.com/office/drawing/2016/5/14/chartex":           "cx8",
	"http://schemas.microsoft.com/office/drawing/2016/ink":                    "aink",
	"http://schemas.microsoft.com/office/drawing/2017/model3d":                "am3d",
	"http://schemas.microsoft.com/office/2019/extlst":                         "oel",
	"urn:schemas-microsoft-com:office:office":                                 "o",
	"urn:schemas-microsoft-com:office:word":                                   "w10",
	"urn:schemas-microsoft-com:vml":                                           "v",
}
