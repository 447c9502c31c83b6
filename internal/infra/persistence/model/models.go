package model

// All lists every persisted model, in migration order.
func All() []any {
	return []any{
		ProfileModel{},
		IndexedLocationModel{},
		VenueModel{},
		BoostModel{},
		MembershipModel{},
		FeatureUsageModel{},
		LikeModel{},
		MatchModel{},
		PointAccountModel{},
		SubjectDeviceModel{},
	}
}
