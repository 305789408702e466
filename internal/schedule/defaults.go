package schedule

// DefaultClasses is installed whenever the class catalog loads empty.
func DefaultClasses() []GymClass {
	return []GymClass{
		{ID: "cls-zumba", Name: "Zumba", Category: CategoryCardio, Description: "Olahraga kardio berbasis tarian Latin yang menyenangkan", IsActive: true},
		{ID: "cls-spinning", Name: "Spinning", Category: CategoryCardio, Description: "Latihan sepeda statis intensitas tinggi", IsActive: true},
		{ID: "cls-aerobik", Name: "Aerobik", Category: CategoryCardio, Description: "Gerakan aerobik untuk meningkatkan stamina dan kebugaran", IsActive: true},
		{ID: "cls-bodypump", Name: "Body Pump", Category: CategoryStrength, Description: "Latihan beban dengan barbel untuk seluruh tubuh", IsActive: true},
		{ID: "cls-crossfit", Name: "CrossFit", Category: CategoryStrength, Description: "Program latihan fungsional intensitas tinggi", IsActive: true},
		{ID: "cls-kettlebell", Name: "Kettlebell", Category: CategoryStrength, Description: "Latihan kekuatan menggunakan kettlebell", IsActive: true},
		{ID: "cls-trx", Name: "TRX", Category: CategoryFunctional, Description: "Suspension training untuk kekuatan dan stabilitas", IsActive: true},
		{ID: "cls-bootcamp", Name: "Bootcamp", Category: CategoryFunctional, Description: "Latihan HIIT gabungan kardio dan kekuatan", IsActive: true},
		{ID: "cls-yoga", Name: "Yoga", Category: CategoryMindBody, Description: "Latihan fleksibilitas, kekuatan, dan ketenangan pikiran", IsActive: true},
		{ID: "cls-pilates", Name: "Pilates", Category: CategoryMindBody, Description: "Latihan core, postur, dan fleksibilitas", IsActive: true},
		{ID: "cls-bodybalance", Name: "Body Balance", Category: CategoryMindBody, Description: "Kombinasi Yoga, Tai Chi, dan Pilates", IsActive: true},
	}
}
