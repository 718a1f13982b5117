// Package sqlgen turns natural-language questions into read-only SQL against
// the employees schema, with a hard guard against anything destructive.
package sqlgen

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"clinic-assistant-be/pkg/llm"
)

// DefaultStatement is returned when the model produces nothing usable.
const DefaultStatement = "SELECT * FROM employees.employee LIMIT 5;"

const schemaPrompt = `You are a PostgreSQL query generator for the "employees" schema.

Tables:
- employees.employee (id, birth_date, first_name, last_name, gender, hire_date)
- employees.department (id, dept_name)
- employees.department_employee (employee_id, department_id, from_date, to_date)
- employees.department_manager (employee_id, department_id, from_date, to_date)
- employees.title (employee_id, title, from_date, to_date)
- employees.salary (employee_id, amount, from_date, to_date)

Rules:
- Generate exactly ONE SELECT statement, nothing else.
- Always schema-qualify tables as employees.<table>.
- Join through employees.department_employee for employee-department questions.
- Always end with a LIMIT clause.

Respond with ONLY the SQL statement.`

// destructiveKeywords reject both the question (before any SQL is
// generated) and the extracted statement (before it is executed). Matching
// is by substring on the lowercased text, so even a statement that merely
// mentions one of these words in data is refused.
var destructiveKeywords = []string{
	"drop", "delete", "truncate", "update", "insert", "alter", "create", "modify",
}

var (
	selectStatement = regexp.MustCompile(`(?is)(SELECT\b.*?;)`)
	limitClause     = regexp.MustCompile(`(?i)\bLIMIT\s+\d+`)
)

// RejectedError reports which destructive keyword blocked the question.
type RejectedError struct {
	Keyword string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("request rejected: destructive keyword %q is not allowed", e.Keyword)
}

// Generator produces guarded SELECT statements from questions.
type Generator struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

// NewGenerator creates a new SQL generator
func NewGenerator(llmProvider llm.LLMProvider, logger *log.Logger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Generate checks the question against the destructive-keyword guard, asks
// the model for SQL, extracts a single bounded SELECT statement, and guards
// that statement again before handing it back. The question-level guard runs
// before the model call, so a rejected question never reaches the LLM at
// all; the statement-level guard catches destructive SQL the model produced
// anyway, including keywords appearing inside string data.
func (g *Generator) Generate(ctx context.Context, question string) (string, error) {
	if kw := destructiveKeyword(question); kw != "" {
		g.logger.Printf("[GUARD] Rejected question containing %q", kw)
		return "", &RejectedError{Keyword: kw}
	}

	prompt := schemaPrompt + "\n\nQuestion: " + question
	response, err := g.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		g.logger.Printf("[ERROR] SQL generation failed: %v", err)
		return DefaultStatement, nil
	}

	stmt := ExtractStatement(response)
	if kw := destructiveKeyword(stmt); kw != "" {
		g.logger.Printf("[GUARD] Rejected generated statement containing %q", kw)
		return "", &RejectedError{Keyword: kw}
	}
	g.logger.Printf("[SQL] %s", stmt)
	return stmt, nil
}

// ExtractStatement pulls the first SELECT statement out of raw model output.
// A statement without a terminating semicolon is completed, and one without
// a LIMIT clause gets LIMIT 10 appended. Output that contains no SELECT at
// all yields DefaultStatement.
func ExtractStatement(raw string) string {
	if m := selectStatement.FindString(raw); m != "" {
		return ensureLimit(strings.TrimSpace(m))
	}

	idx := strings.Index(strings.ToUpper(raw), "SELECT")
	if idx == -1 {
		return DefaultStatement
	}

	stmt := strings.TrimSpace(raw[idx:])
	stmt = strings.TrimSuffix(stmt, ";")
	return ensureLimit(stmt + ";")
}

func ensureLimit(stmt string) string {
	if limitClause.MatchString(stmt) {
		return stmt
	}
	return strings.TrimSuffix(stmt, ";") + " LIMIT 10;"
}

func destructiveKeyword(question string) string {
	q := strings.ToLower(question)
	for _, kw := range destructiveKeywords {
		if strings.Contains(q, kw) {
			return kw
		}
	}
	return ""
}
