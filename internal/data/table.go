package data

import (
    "encoding/csv"
    "errors"
    "fmt"
    "math"
    "os"
    "strconv"
)

type Kind int

const (
    Numeric Kind = iota
    Categorical
)

// Column é uma coluna tipada da tabela. Colunas Numeric usam Floats com NaN
// marcando valor faltante; colunas Categorical usam Labels com "" no lugar.
type Column struct {
    Name   string
    Kind   Kind
    Floats []float64
    Labels []string
}

func (c Column) Missing(i int) bool {
    if c.Kind == Numeric { return math.IsNaN(c.Floats[i]) }
    return c.Labels[i] == ""
}

// Table guarda a coorte em colunas de comprimento fixo. Colunas carregadas
// nunca são sobrescritas; só é permitido acrescentar colunas novas.
type Table struct {
    cols  []Column
    index map[string]int
    nrows int
}

func NewTable(nrows int) *Table {
    return &Table{index: map[string]int{}, nrows: nrows}
}

func (t *Table) NumRows() int { return t.nrows }

func (t *Table) NumCols() int { return len(t.cols) }

func (t *Table) Names() []string {
    out := make([]string, len(t.cols))
    for i := range t.cols { out[i] = t.cols[i].Name }
    return out
}

func (t *Table) Column(name string) (Column, bool) {
    i, ok := t.index[name]
    if !ok { return Column{}, false }
    return t.cols[i], true
}

func (t *Table) add(c Column) error {
    if _, ok := t.index[c.Name]; ok { return fmt.Errorf("coluna duplicada: %s", c.Name) }
    t.index[c.Name] = len(t.cols)
    t.cols = append(t.cols, c)
    return nil
}

func (t *Table) AddNumeric(name string, vals []float64) error {
    if len(vals) != t.nrows { return fmt.Errorf("coluna %s: %d valores para %d linhas", name, len(vals), t.nrows) }
    return t.add(Column{Name: name, Kind: Numeric, Floats: vals})
}

func (t *Table) AddCategorical(name string, vals []string) error {
    if len(vals) != t.nrows { return fmt.Errorf("coluna %s: %d valores para %d linhas", name, len(vals), t.nrows) }
    return t.add(Column{Name: name, Kind: Categorical, Labels: vals})
}

func isMissingMark(s string) bool { return s == "" || s == "NA" || s == "NaN" }

// LoadCSV lê a coorte inteira de um arquivo CSV com cabeçalho. Uma coluna
// cujos valores presentes são todos numéricos vira Numeric; qualquer outra
// vira Categorical. Os marcadores "", "NA" e "NaN" indicam valor faltante.
func LoadCSV(path string) (*Table, error) {
    f, err := os.Open(path)
    if err != nil { return nil, err }
    defer f.Close()

    rows, err := csv.NewReader(f).ReadAll()
    if err != nil { return nil, err }
    if len(rows) < 2 { return nil, errors.New("csv sem registros") }

    header := rows[0]
    n := len(rows) - 1
    t := NewTable(n)
    for j, name := range header {
        raw := make([]string, n)
        numeric := true
        for i := 0; i < n; i++ {
            raw[i] = rows[i+1][j]
            if numeric && !isMissingMark(raw[i]) {
                if _, err := strconv.ParseFloat(raw[i], 64); err != nil { numeric = false }
            }
        }
        if numeric {
            vals := make([]float64, n)
            for i, s := range raw {
                if isMissingMark(s) {
                    vals[i] = math.NaN()
                    continue
                }
                vals[i], _ = strconv.ParseFloat(s, 64)
            }
            if err := t.AddNumeric(name, vals); err != nil { return nil, err }
            continue
        }
        vals := make([]string, n)
        for i, s := range raw {
            if isMissingMark(s) { continue }
            vals[i] = s
        }
        if err := t.AddCategorical(name, vals); err != nil { return nil, err }
    }
    return t, nil
}
