package study

import (
    "fmt"
    "os"

    "github.com/go-playground/validator/v10"
    "github.com/goccy/go-yaml"

    "recidiva/internal/features"
)

var validate = validator.New()

// ModelSpec é um modelo do estudo: um nome e o subconjunto de covariáveis
// da tabela que ele consome.
type ModelSpec struct {
    Name       string               `yaml:"name" validate:"required"`
    Covariates []features.Covariate `yaml:"covariates" validate:"required,min=1,dive"`
}

// Config descreve o estudo completo: a coluna de desfecho e os modelos
// independentes cujas previsões o ensemble agrega.
type Config struct {
    Outcome string      `yaml:"outcome" validate:"required"`
    Models  []ModelSpec `yaml:"models" validate:"required,min=1,dive"`
}

// DefaultConfig é o desenho padrão do estudo: cinco modelos, um por faceta
// clínica, com cada coluna da coorte em exatamente um modelo.
func DefaultConfig() Config {
    return Config{
        Outcome: "recurrence",
        Models: []ModelSpec{
            {Name: "demografia", Covariates: []features.Covariate{
                {Name: "age"}, {Name: "family_history"},
            }},
            {Name: "estadiamento", Covariates: []features.Covariate{
                {Name: "tumor_stage", Categorical: true}, {Name: "gleason", Categorical: true},
            }},
            {Name: "volume", Covariates: []features.Covariate{
                {Name: "tumor_volume"}, {Name: "prostate_volume"}, {Name: "organ_confined"},
            }},
            {Name: "bioquimica", Covariates: []features.Covariate{
                {Name: "preop_psa"}, {Name: "node_involvement"},
            }},
            {Name: "terapia", Covariates: []features.Covariate{
                {Name: "preop_therapy"}, {Name: "adjuvant_therapy"}, {Name: "adjuvant_radiation"},
            }},
        },
    }
}

// LoadConfig lê e valida um arquivo YAML de estudo.
func LoadConfig(path string) (Config, error) {
    var cfg Config
    b, err := os.ReadFile(path)
    if err != nil { return cfg, err }
    if err := yaml.Unmarshal(b, &cfg); err != nil { return cfg, fmt.Errorf("yaml inválido: %w", err) }
    if err := Validate(cfg); err != nil { return cfg, err }
    return cfg, nil
}

// Validate aplica as regras estruturais e rejeita nomes repetidos. O nome
// "ensemble" é reservado para a coluna agregada.
func Validate(cfg Config) error {
    if err := validate.Struct(cfg); err != nil { return fmt.Errorf("configuração inválida: %w", err) }
    seen := map[string]bool{}
    for _, m := range cfg.Models {
        if m.Name == "ensemble" { return fmt.Errorf("nome de modelo reservado: %s", m.Name) }
        if seen[m.Name] { return fmt.Errorf("modelo repetido: %s", m.Name) }
        seen[m.Name] = true
        cols := map[string]bool{}
        for _, c := range m.Covariates {
            if cols[c.Name] { return fmt.Errorf("modelo %s: covariável repetida: %s", m.Name, c.Name) }
            cols[c.Name] = true
        }
    }
    return nil
}
