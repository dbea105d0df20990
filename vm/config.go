// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

type Config struct {
	// ReceiptCacheSize bounds how many receipts of rejected transactions are
	// kept in memory. Accepted receipts are always persisted.
	ReceiptCacheSize int `serialize:"true" json:"receiptCacheSize"`

	MaxLogsPerQuery int `serialize:"true" json:"maxLogsPerQuery"`
	MaxRangeLimit   int `serialize:"true" json:"maxRangeLimit"`
}

func (c *Config) SetDefaults() {
	c.ReceiptCacheSize = 1024
	c.MaxLogsPerQuery = 1024
	c.MaxRangeLimit = 256
}
