package ast

// Keyword is a reserved form name. The parser turns every symbol spelled like
// a keyword into a Keyword, so the evaluator never compares names.
type Keyword uint8

// Reserved keywords
const (
	KeywordInvalid Keyword = iota
	KeywordIf
	KeywordDefine
	KeywordTrue
	KeywordFalse
	KeywordLambda
	KeywordPrint
	KeywordEqual
	KeywordLoad
)

var keywordNames = map[Keyword]string{
	KeywordIf:     "if",
	KeywordDefine: "define",
	KeywordTrue:   "true",
	KeywordFalse:  "false",
	KeywordLambda: "lambda",
	KeywordPrint:  "print",
	KeywordEqual:  "equal",
	KeywordLoad:   "load",
}

var keywordDocs = map[Keyword]string{
	KeywordIf:     "Conditional if",
	KeywordDefine: "Define a symbol",
	KeywordLambda: "define a Lambda function",
	KeywordEqual:  "Check if two values are equal",
	KeywordPrint:  "Print a value",
	KeywordLoad:   "Load a file",
}

var keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordNames))
	for k, name := range keywordNames {
		m[name] = k
	}
	return m
}()

// LookupKeyword returns the keyword spelled as name, if any.
func LookupKeyword(name string) (Keyword, bool) {
	k, ok := keywords[name]
	return k, ok
}

func (k Keyword) String() string {
	return keywordNames[k]
}

// Doc returns a short help text, empty for undocumented keywords.
func (k Keyword) Doc() string {
	return keywordDocs[k]
}
