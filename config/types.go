package config

// NodeConfig represents the host daemon's configuration
type NodeConfig struct {
	ListenAddr  string `yaml:"listen_addr"`
	MetricsAddr string `yaml:"metrics_addr"`
	DataDir     string `yaml:"data_dir"`
	DBBackend   string `yaml:"db_backend"` // "leveldb" or "bbolt"
	// HostAddress is the privileged caller allowed to consume account RC
	// and to invoke mint after genesis. Base58.
	HostAddress string `yaml:"host_address"`
}

// GenesisAlloc is one initial balance minted at first start
type GenesisAlloc struct {
	Address string `yaml:"address"`
	Amount  uint64 `yaml:"amount"`
}

// GenesisConfig holds the configuration from genesis.yml
type GenesisConfig struct {
	Node   NodeConfig     `yaml:"node"`
	Allocs []GenesisAlloc `yaml:"allocs"`
}

// ConfigFile is the top-level structure for genesis.yml
type ConfigFile struct {
	Config GenesisConfig `yaml:"config"`
}

// RPCTuning holds request handling knobs from the optional server.ini
type RPCTuning struct {
	Concurrency     int `ini:"concurrency"`
	MaxBodyBytes    int `ini:"max_body_bytes"`
	ShutdownGraceMs int `ini:"shutdown_grace_ms"`
}

// TuningConfig is the optional ini-based tuning file
type TuningConfig struct {
	RPC RPCTuning `ini:"rpc"`
}
