package data

import (
	"encoding/csv"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

var stages = []string{"T1", "T2", "T3"}
var gleasonGrades = []string{"5-6", "7", "8-10"}

// GenerateSyntheticCohort escreve uma coorte sintética de n pacientes em CSV.
// A mesma semente produz sempre o mesmo arquivo.
func GenerateSyntheticCohort(n int, seed int64, outPath string) error {
    if dir := filepath.Dir(outPath); dir != "." {
        if err := os.MkdirAll(dir, 0o755); err != nil {
            return err
        }
    }
    f, err := os.Create(outPath)
    if err != nil {
        return err
    }
    defer f.Close()

    w := csv.NewWriter(f)
    defer w.Flush()

    header := []string{"age", "family_history", "tumor_stage", "gleason", "tumor_volume", "prostate_volume", "node_involvement", "organ_confined", "preop_psa", "preop_therapy", "adjuvant_therapy", "adjuvant_radiation", "recurrence"}
    if err := w.Write(header); err != nil {
        return err
    }

    rng := rand.New(rand.NewSource(seed))
    for i := 0; i < n; i++ {
        p := samplePatient(rng)
        rec := []string{
            strconv.Itoa(p.Age),
            strconv.Itoa(p.FamilyHistory),
            p.TumorStage,
            p.Gleason,
            formatValue(p.TumorVolume, 1),
            formatValue(p.ProstateVolume, 1),
            strconv.Itoa(p.NodeInvolvement),
            strconv.Itoa(p.OrganConfined),
            formatValue(p.PreopPSA, 2),
            strconv.Itoa(p.PreopTherapy),
            strconv.Itoa(p.AdjuvantTherapy),
            strconv.Itoa(p.AdjuvantRadiation),
            strconv.Itoa(p.Recurrence),
        }
        if err := w.Write(rec); err != nil {
            return err
        }
    }
    return nil
}

func samplePatient(rng *rand.Rand) Patient {
    age := int(math.Round(63 + 6*rng.NormFloat64()))
    if age < 45 {
        age = 45
    }
    if age > 79 {
        age = 79
    }
    familyHistory := bernoulli(rng, 0.12)
    stage := pickWeighted(rng, stages, []float64{0.45, 0.40, 0.15})
    gleason := pickWeighted(rng, gleasonGrades, []float64{0.35, 0.45, 0.20})

    psa := math.Exp(2.0 + 0.7*rng.NormFloat64())
    tumorVolume := math.Exp(1.6 + 0.6*rng.NormFloat64())
    prostateVolume := 45 + 14*rng.NormFloat64()
    if prostateVolume < 15 {
        prostateVolume = 15
    }

    pNode := 0.04
    if stage == "T3" {
        pNode += 0.18
    }
    if gleason == "8-10" {
        pNode += 0.15
    }
    node := bernoulli(rng, pNode)

    pConfined := 0.85
    if stage == "T2" {
        pConfined = 0.65
    }
    if stage == "T3" {
        pConfined = 0.25
    }
    if gleason == "8-10" {
        pConfined -= 0.15
    }
    confined := bernoulli(rng, pConfined)

    preopTherapy := bernoulli(rng, 0.10)
    pRadiation := 0.06
    if stage == "T3" {
        pRadiation += 0.20
    }
    if node == 1 {
        pRadiation += 0.20
    }
    radiation := bernoulli(rng, pRadiation)
    adjuvant := radiation
    if adjuvant == 0 {
        pHormone := 0.08
        if node == 1 {
            pHormone += 0.30
        }
        adjuvant = bernoulli(rng, pHormone)
    }

    score := -2.6
    score += 0.02 * float64(age-63)
    if familyHistory == 1 {
        score += 0.35
    }
    if stage == "T2" {
        score += 0.55
    }
    if stage == "T3" {
        score += 1.10
    }
    if gleason == "7" {
        score += 0.60
    }
    if gleason == "8-10" {
        score += 1.35
    }
    score += 0.55 * (math.Log(psa) - 2.0)
    score += 0.03 * (tumorVolume - 6.0)
    if node == 1 {
        score += 1.10
    }
    if confined == 1 {
        score -= 0.60
    }
    if preopTherapy == 1 {
        score += 0.20
    }
    if radiation == 1 {
        score += 0.35
    }
    recurrence := bernoulli(rng, 1.0/(1.0+math.Exp(-score)))

    if rng.Float64() < 0.05 {
        tumorVolume = math.NaN()
    }
    if rng.Float64() < 0.05 {
        prostateVolume = math.NaN()
    }
    if rng.Float64() < 0.04 {
        psa = math.NaN()
    }

    return Patient{
        Age:               age,
        FamilyHistory:     familyHistory,
        TumorStage:        stage,
        Gleason:           gleason,
        TumorVolume:       tumorVolume,
        ProstateVolume:    prostateVolume,
        NodeInvolvement:   node,
        OrganConfined:     confined,
        PreopPSA:          psa,
        PreopTherapy:      preopTherapy,
        AdjuvantTherapy:   adjuvant,
        AdjuvantRadiation: radiation,
        Recurrence:        recurrence,
    }
}

func bernoulli(rng *rand.Rand, p float64) int {
    if rng.Float64() < p {
        return 1
    }
    return 0
}

func pickWeighted(rng *rand.Rand, opts []string, weights []float64) string {
    u := rng.Float64()
    acc := 0.0
    for i, w := range weights {
        acc += w
        if u < acc {
            return opts[i]
        }
    }
    return opts[len(opts)-1]
}

func formatValue(v float64, prec int) string {
    if math.IsNaN(v) {
        return "NA"
    }
    return strconv.FormatFloat(v, 'f', prec, 64)
}
