package rotation

import "context"

// read config for an account from the repo, falling back to defaultCfg
func (s *RotationService) loadConfig(ctx context.Context, accountID string) Config {
	if s.cfgRepo == nil {
		return s.defaultCfg
	}

	dbCfg, ok, err := s.cfgRepo.GetConfig(ctx, accountID)
	if err != nil || !ok {
		return s.defaultCfg
	}

	// start from defaults to keep sane fallbacks for any missing fields
	cfg := s.defaultCfg

	if dbCfg.WCTR+dbCfg.WConversionRate+dbCfg.WAuthorityImpact+dbCfg.WCPA > 0 {
		cfg.WCTR = dbCfg.WCTR
		cfg.WConversionRate = dbCfg.WConversionRate
		cfg.WAuthorityImpact = dbCfg.WAuthorityImpact
		cfg.WCPA = dbCfg.WCPA
	}

	if dbCfg.RotationThreshold > 0 {
		cfg.RotationThreshold = dbCfg.RotationThreshold
	}
	if dbCfg.UnderperformanceScore > 0 {
		cfg.UnderperformanceScore = dbCfg.UnderperformanceScore
	}
	if dbCfg.MinCampaignDurationDays > 0 {
		cfg.MinCampaignDurationDays = dbCfg.MinCampaignDurationDays
	}
	if dbCfg.RampUpDays > 0 {
		cfg.RampUpDays = dbCfg.RampUpDays
	}

	if dbCfg.MinBudgetShare > 0 && dbCfg.MaxBudgetShare > dbCfg.MinBudgetShare {
		cfg.MinBudgetShare = dbCfg.MinBudgetShare
		cfg.MaxBudgetShare = dbCfg.MaxBudgetShare
	}

	return cfg
}
