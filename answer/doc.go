// Package answer turns retrieved evidence into grounded natural-language
// answers. It assembles a budget-bounded context from evidence units, renders
// the HR prompt around it, calls the language model, and audits the result
// for employee names that the evidence does not back. Queries with no
// qualifying evidence short-circuit to a fixed no-match answer without
// touching the model.
package answer
