// Package subst expands "${name}" references against a properties store and a
// variable provider, by default the process environment.
//
// References do not nest: the first "}" after "${" always closes it. Flags
// select whether the store shadows the environment, whether unresolved
// references collapse to empty text, and whether replaced text is re-scanned.
package subst
