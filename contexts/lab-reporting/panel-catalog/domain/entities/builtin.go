package entities

const (
	sectionRBCIndices = "RBC INDICES"
	sectionWBC        = "TOTAL WBC COUNT"
	sectionPlatelets  = "PLATELETS"
	sectionSmear      = "PERIPHERAL BLOOD SMEAR"
)

// BuiltinPanels returns the four laboratory panel templates. The catalog is
// fixed; the slice is rebuilt on every call so callers cannot mutate the
// templates in place.
func BuiltinPanels() []Panel {
	return []Panel{
		{
			Code:           PanelCBC,
			Name:           "Complete Blood Count (CBC)",
			InstrumentNote: "Test done on Nihon Kohden MEK- 6420K fully automated cell counter.",
			Tests: []TestDefinition{
				{Name: "Haemoglobin", Unit: "g%", NormalText: "Male: 14 - 16 g%, Female: 12 - 14 g%"},
				{Name: "RBC Count", Unit: "million/cu.mm.", NormalText: "4.0 - 6.0 million/cu.mm"},
				{Name: "PCV", Unit: "%", NormalText: "35 - 60 %"},
				{Name: "MCV", Unit: "fl", NormalText: "80 - 99 fl", Section: sectionRBCIndices},
				{Name: "MCH", Unit: "pg", NormalText: "27 - 31 pg", Section: sectionRBCIndices},
				{Name: "MCHC", Unit: "%", NormalText: "32 - 37 %", Section: sectionRBCIndices},
				{Name: "RDW", Unit: "fl", NormalText: "9 - 17 fl", Section: sectionRBCIndices},
				{Name: "Total WBC Count", Unit: "/cu.mm", NormalText: "4000 - 10,000 /cu.mm", Section: sectionWBC},
				{Name: "Neutrophils", Unit: "%", NormalText: "40 - 70 %", Section: sectionWBC},
				{Name: "Lymphocytes", Unit: "%", NormalText: "20 - 45 %", Section: sectionWBC},
				{Name: "Eosinophils", Unit: "%", NormalText: "00 - 06 %", Section: sectionWBC},
				{Name: "Monocytes", Unit: "%", NormalText: "00 - 08 %", Section: sectionWBC},
				{Name: "Basophils", Unit: "%", NormalText: "00 - 01 %", Section: sectionWBC},
				{Name: "Platelet Count", Unit: "lak/cu.mm", NormalText: "150000 - 450000 /lak cu.mm", Section: sectionPlatelets},
				{Name: "Platelets on Smear", Unit: "", NormalText: "Adequate On Smear", Section: sectionPlatelets},
				{Name: "RBC Morphology", Unit: "", NormalText: "Normocytic, Normochromic", Section: sectionSmear},
				{Name: "WBCs on PS", Unit: "", NormalText: "Normal", Section: sectionSmear},
				{Name: "RDWSD", Unit: "fl", NormalText: "37 - 54 fl", Section: sectionSmear},
				{Name: "RDWCV", Unit: "%", NormalText: "11 - 16 %", Section: sectionSmear},
				{Name: "MPV", Unit: "fl", NormalText: "9 - 13 fl", Section: sectionSmear},
				{Name: "P-LCR", Unit: "%", NormalText: "13 - 43 %", Section: sectionSmear},
			},
		},
		{
			Code:           PanelLFT,
			Name:           "Liver Function Test (LFT)",
			InstrumentNote: "Test Done on semi automated analyser Micro Lab RX-50.",
			Tests: []TestDefinition{
				{Name: "Bilirubin Total", Unit: "mg/dl", NormalText: "0.1 - 1.2 mg/dl"},
				{Name: "Bilirubin Direct", Unit: "mg/dl", NormalText: "0.1 - 0.4 mg/dl"},
				{Name: "Bilirubin Indirect", Unit: "mg/dl", NormalText: "0.1 - 0.7 mg/dl"},
				{Name: "S.G.O.T.", Unit: "U/L", NormalText: "0 - 46 U/L"},
				{Name: "S.G.P.T.", Unit: "IU/L", NormalText: "0 - 49 U/L"},
				{Name: "Alkaline Phosphatase", Unit: "IU/L", NormalText: "15 - 112 IU/L"},
				{Name: "Total Proteins", Unit: "gm/dl", NormalText: "6.0 - 8.3 gm/dl"},
				{Name: "Albumin", Unit: "gm/dl", NormalText: "3.2 - 5.0 gm/dl"},
				{Name: "Globulin", Unit: "gm/dl", NormalText: "2.0 - 3.5 gm/dl"},
				{Name: "A / G Ratio", Unit: "", NormalText: "1.0 - 2.3"},
				{Name: "G.G.T.P.", Unit: "IU/L", NormalText: "25 - 43 IU/L"},
			},
		},
		{
			Code: PanelKFT,
			Name: "Kidney Function Test (KFT)",
			Tests: []TestDefinition{
				{Name: "Blood Urea", Unit: "mg/dl", NormalText: "15 - 45 mg/dl"},
				{Name: "Serum Creatinine", Unit: "mg/dl", NormalText: "0.6 - 1.4 mg/dl"},
				{Name: "Uric Acid", Unit: "mg/dl", NormalText: "2.4 - 7.0 mg/dl"},
				{Name: "Sodium", Unit: "mEq/L", NormalText: "135 - 155 mEq/L"},
				{Name: "Potassium", Unit: "mEq/L", NormalText: "3.5 - 5.5 mEq/L"},
				{Name: "Chloride", Unit: "mEq/L", NormalText: "98 - 107 mEq/L"},
			},
		},
		{
			Code: PanelTFT,
			Name: "Thyroid Function Test (TFT)",
			Tests: []TestDefinition{
				{Name: "T3 (Triiodothyronine)", Unit: "ng/ml", NormalText: "0.8 - 2.0 ng/ml"},
				{Name: "T4 (Thyroxine)", Unit: "µg/dl", NormalText: "4.8 - 12.7 µg/dl"},
				{Name: "TSH", Unit: "µIU/ml", NormalText: "0.27 - 4.2 µIU/ml"},
			},
		},
	}
}
