package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/config"
	"github.com/ezrec/intcode/cpu"
)

func TestParsePatch(t *testing.T) {
	assert := assert.New(t)

	addr, values, err := parsePatch("0=2")
	assert.NoError(err)
	assert.Equal(0, addr)
	assert.Equal([]int64{2}, values)

	addr, values, err = parsePatch(" 12 = 1, -2,3")
	assert.NoError(err)
	assert.Equal(12, addr)
	assert.Equal([]int64{1, -2, 3}, values)

	_, _, err = parsePatch("12")
	assert.Error(err)

	_, _, err = parsePatch("-1=2")
	assert.ErrorIs(err, config.ErrPatch)

	_, _, err = parsePatch("x=2")
	assert.Error(err)
}

func TestNewChain(t *testing.T) {
	assert := assert.New(t)

	cfg := config.Default()
	cfg.Strict = true
	cfg.MemoryLimit = 16
	cfg.Chain.Phases = []int64{7}

	// add 1 1 -> [100]; in [11]; out [11]; halt
	ch := newChain(cfg, cpu.Program{1101, 1, 1, 100, 3, 11, 4, 11, 99, 0, 0, 0})
	assert.Len(ch.Machines, 1)
	assert.True(ch.Machines[0].Strict)
	assert.Equal(int64(16), ch.Machines[0].Mem.Limit)

	_, err := ch.Serial(cfg.Chain.Phases, 0)
	assert.ErrorIs(err, cpu.ErrAddressRange)

	_, _, err = ch.Best(cfg.Chain.Phases, false)
	assert.ErrorIs(err, cpu.ErrAddressRange)
}
