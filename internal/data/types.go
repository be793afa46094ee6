package data

// Patient é um registro da coorte cirúrgica. Campos float64 usam NaN como
// valor faltante.
type Patient struct {
    Age               int
    FamilyHistory     int
    TumorStage        string
    Gleason           string
    TumorVolume       float64
    ProstateVolume    float64
    NodeInvolvement   int
    OrganConfined     int
    PreopPSA          float64
    PreopTherapy      int
    AdjuvantTherapy   int
    AdjuvantRadiation int
    Recurrence        int
}
