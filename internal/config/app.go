package config

type AppConfig struct {
	Server     ServerConfig
	Log        LogConfig
	Settlement SettlementConfig
	Report     ReportConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	settlementCfg, err := LoadSettlement()
	if err != nil {
		return AppConfig{}, err
	}
	reportCfg, err := LoadReport()
	if err != nil {
		return AppConfig{}, err
	}
	if _, err := reportCfg.Location(); err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Server:     serverCfg,
		Log:        logCfg,
		Settlement: settlementCfg,
		Report:     reportCfg,
	}, nil
}
