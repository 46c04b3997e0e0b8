// Package fuzztests houses Go fuzz harnesses for the expression pipeline
// (line -> lexer -> postfix -> evaluator). They guard against panics and
// check structural invariants on arbitrary input lines.
//
// Назначение: прогонять произвольные строки через лексер и весь конвейер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/lexer, internal/driver, internal/testkit.
package fuzztests
