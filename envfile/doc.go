/*
Package envfile parses the contents of “.env” files into a mapping of variable
names to their (string) values.

The grammar is line oriented:

	# a comment line
	NAME=plain value # inline comment
	SINGLE='no #comment and no \n expansion'
	DOUBLE="tab\there, new\nline"
	MULTI="first line
	second line"

Names must match [A-Za-z_][A-Za-z0-9_]*; whitespace around the name and the
“=” is ignored.

# Unquoted Values

An unquoted value runs up to the first unescaped “#” or the end of the line,
whichever comes first, and is then trimmed of surrounding whitespace. There's
no escape expansion at all, so any backslashes are kept as they are.

# Quoted Values

Values starting with either a single quote ' or a double quote " end at the
next matching quote that isn't escaped. A quote counts as escaped when it is
immediately preceded by an odd number of backslashes, so

	A="a\"b"   →  a\"b
	B="a\\"    →  a\\
	C="a\\\"b" →  a\\\"b

Please note that escaped quotes are not unescaped, the backslashes are kept.
Anything following the closing quote is ignored.

When the closing quote is missing on the same line, the value continues on the
following lines (separated by line feeds) until a line containing the closing
quote. Leading whitespace on these continuation lines is preserved.

Double-quoted values (but not single-quoted values) finally get the escape
sequences \t, \r\n, \r, and \n expanded into their control characters.

# Duplicates

When the same name appears multiple times, the value of the last occurrence
wins.

# Encoding

Parse expects already decoded text, such as UTF-8 without a byte order mark.
A leading byte order mark renders the first line invalid, so strip it before
parsing.

# Non-Features

There is no variable interpolation, no shell expansion, and no command
substitution.
*/
package envfile
