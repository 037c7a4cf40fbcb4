package format

var AppendLiteral = appendLiteral
