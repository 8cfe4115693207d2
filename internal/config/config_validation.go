// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig]. Field-level rules live in
// [ClientConfig.validate]; the structured view only rejects negative
// durations, which no source should produce.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Toast.Duration < 0 || cfg.Toast.TickInterval < 0 ||
		cfg.Toast.ExitAnimation < 0 || cfg.Toast.VisitFollowUp < 0 {
		return ErrInvalidToastConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 || cfg.Adapter.InstanceCookie == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Toast.TickInterval <= 0 || cfg.Toast.Duration < cfg.Toast.TickInterval {
		return ErrInvalidToastConfigs
	}

	return nil
}
