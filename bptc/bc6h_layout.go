package bptc

// bc6hFieldLayout lists, for every header bit position of each BC6H mode,
// which endpoint component bit is stored there.
var bc6hFieldLayout = [14][82]bc6hFieldDesc{
	{ // Mode 1 (0x00) - 10 5 5 5
		{fM, 0}, {fM, 1}, {fGY, 4}, {fBY, 4}, {fBZ, 4}, {fRW, 0}, {fRW, 1}, {fRW, 2}, {fRW, 3}, {fRW, 4},
		{fRW, 5}, {fRW, 6}, {fRW, 7}, {fRW, 8}, {fRW, 9}, {fGW, 0}, {fGW, 1}, {fGW, 2}, {fGW, 3}, {fGW, 4},
		{fGW, 5}, {fGW, 6}, {fGW, 7}, {fGW, 8}, {fGW, 9}, {fBW, 0}, {fBW, 1}, {fBW, 2}, {fBW, 3}, {fBW, 4},
		{fBW, 5}, {fBW, 6}, {fBW, 7}, {fBW, 8}, {fBW, 9}, {fRX, 0}, {fRX, 1}, {fRX, 2}, {fRX, 3}, {fRX, 4},
		{fGZ, 4}, {fGY, 0}, {fGY, 1}, {fGY, 2}, {fGY, 3}, {fGX, 0}, {fGX, 1}, {fGX, 2}, {fGX, 3}, {fGX, 4},
		{fBZ, 0}, {fGZ, 0}, {fGZ, 1}, {fGZ, 2}, {fGZ, 3}, {fBX, 0}, {fBX, 1}, {fBX, 2}, {fBX, 3}, {fBX, 4},
		{fBZ, 1}, {fBY, 0}, {fBY, 1}, {fBY, 2}, {fBY, 3}, {fRY, 0}, {fRY, 1}, {fRY, 2}, {fRY, 3}, {fRY, 4},
		{fBZ, 2}, {fRZ, 0}, {fRZ, 1}, {fRZ, 2}, {fRZ, 3}, {fRZ, 4}, {fBZ, 3}, {fD, 0}, {fD, 1}, {fD, 2},
		{fD, 3}, {fD, 4},
	},
	{ // Mode 2 (0x01) - 7 6 6 6
		{fM, 0}, {fM, 1}, {fGY, 5}, {fGZ, 4}, {fGZ, 5}, {fRW, 0}, {fRW, 1}, {fRW, 2}, {fRW, 3}, {fRW, 4},
		{fRW, 5}, {fRW, 6}, {fBZ, 0}, {fBZ, 1}, {fBY, 4}, {fGW, 0}, {fGW, 1}, {fGW, 2}, {fGW, 3}, {fGW, 4},
		{fGW, 5}, {fGW, 6}, {fBY, 5}, {fBZ, 2}, {fGY, 4}, {fBW, 0}, {fBW, 1}, {fBW, 2}, {fBW, 3}, {fBW, 4},
		{fBW, 5}, {fBW, 6}, {fBZ, 3}, {fBZ, 5}, {fBZ, 4}, {fRX, 0}, {fRX, 1}, {fRX, 2}, {fRX, 3}, {fRX, 4},
		{fRX, 5}, {fGY, 0}, {fGY, 1}, {fGY, 2}, {fGY, 3}, {fGX, 0}, {fGX, 1}, {fGX, 2}, {fGX, 3}, {fGX, 4},
		{fGX, 5}, {fGZ, 0}, {fGZ, 1}, {fGZ, 2}, {fGZ, 3}, {fBX, 0}, {fBX, 1}, {fBX, 2}, {fBX, 3}, {fBX, 4},
		{fBX, 5}, {fBY, 0}, {fBY, 1}, {fBY, 2}, {fBY, 3}, {fRY, 0}, {fRY, 1}, {fRY, 2}, {fRY, 3}, {fRY, 4},
		{fRY, 5}, {fRZ, 0}, {fRZ, 1}, {fRZ, 2}, {fRZ, 3}, {fRZ, 4}, {fRZ, 5}, {fD, 0}, {fD, 1}, {fD, 2},
		{fD, 3}, {fD, 4},
	},
	{ // Mode 3 (0x02) - 11 5 4 4
		{fM, 0}, {fM, 1}, {fM, 2}, {fM, 3}, {fM, 4}, {fRW, 0}, {fRW, 1}, {fRW, 2}, {fRW, 3}, {fRW, 4},
		{fRW, 5}, {fRW, 6}, {fRW, 7}, {fRW, 8}, {fRW, 9}, {fGW, 0}, {fGW, 1}, {fGW, 2}, {fGW, 3}, {fGW, 4},
		{fGW, 5}, {fGW, 6}, {fGW, 7}, {fGW, 8}, {fGW, 9}, {fBW, 0}, {fBW, 1}, {fBW, 2}, {fBW, 3}, {fBW, 4},
		{fBW, 5}, {fBW, 6}, {fBW, 7}, {fBW, 8}, {fBW, 9}, {fRX, 0}, {fRX, 1}, {fRX, 2}, {fRX, 3}, {fRX, 4},
		{fRW, 10}, {fGY, 0}, {fGY, 1}, {fGY, 2}, {fGY, 3}, {fGX, 0}, {fGX, 1}, {fGX, 2}, {fGX, 3}, {fGW, 10},
		{fBZ, 0}, {fGZ, 0}, {fGZ, 1}, {fGZ, 2}, {fGZ, 3}, {fBX, 0}, {fBX, 1}, {fBX, 2}, {fBX, 3}, {fBW, 10},
		{fBZ, 1}, {fBY, 0}, {fBY, 1}, {fBY, 2}, {fBY, 3}, {fRY, 0}, {fRY, 1}, {fRY, 2}, {fRY, 3}, {fRY, 4},
		{fBZ, 2}, {fRZ, 0}, {fRZ, 1}, {fRZ, 2}, {fRZ, 3}, {fRZ, 4}, {fBZ, 3}, {fD, 0}, {fD, 1}, {fD, 2},
		{fD, 3}, {fD, 4},
	},
	{ // Mode 4 (0x06) - 11 4 5 4
		{fM, 0}, {fM, 1}, {fM, 2}, {fM, 3}, {fM, 4}, {fRW, 0}, {fRW, 1}, {fRW, 2}, {fRW, 3}, {fRW, 4},
		{fRW, 5}, {fRW, 6}, {fRW, 7}, {fRW, 8}, {fRW, 9}, {fGW, 0}, {fGW, 1}, {fGW, 2}, {fGW, 3}, {fGW, 4},
		{fGW, 5}, {fGW, 6}, {fGW, 7}, {fGW, 8}, {fGW, 9}, {fBW, 0}, {fBW, 1}, {fBW, 2}, {fBW, 3}, {fBW, 4},
		{fBW, 5}, {fBW, 6}, {fBW, 7}, {fBW, 8}, {fBW, 9}, {fRX, 0}, {fRX, 1}, {fRX, 2}, {fRX, 3}, {fRW, 10},
		{fGZ, 4}, {fGY, 0}, {fGY, 1}, {fGY, 2}, {fGY, 3}, {fGX, 0}, {fGX, 1}, {fGX, 2}, {fGX, 3}, {fGX, 4},
		{fGW, 10}, {fGZ, 0}, {fGZ, 1}, {fGZ, 2}, {fGZ, 3}, {fBX, 0}, {fBX, 1}, {fBX, 2}, {fBX, 3}, {fBW, 10},
		{fBZ, 1}, {fBY, 0}, {fBY, 1}, {fBY, 2}, {fBY, 3}, {fRY, 0}, {fRY, 1}, {fRY, 2}, {fRY, 3}, {fBZ, 0},
		{fBZ, 2}, {fRZ, 0}, {fRZ, 1}, {fRZ, 2}, {fRZ, 3}, {fGY, 4}, {fBZ, 3}, {fD, 0}, {fD, 1}, {fD, 2},
		{fD, 3}, {fD, 4},
	},
	{ // Mode 5 (0x0a) - 11 4 4 5
		{fM, 0}, {fM, 1}, {fM, 2}, {fM, 3}, {fM, 4}, {fRW, 0}, {fRW, 1}, {fRW, 2}, {fRW, 3}, {fRW, 4},
		{fRW, 5}, {fRW, 6}, {fRW, 7}, {fRW, 8}, {fRW, 9}, {fGW, 0}, {fGW, 1}, {fGW, 2}, {fGW, 3}, {fGW, 4},
		{fGW, 5}, {fGW, 6}, {fGW, 7}, {fGW, 8}, {fGW, 9}, {fBW, 0}, {fBW, 1}, {fBW, 2}, {fBW, 3}, {fBW, 4},
		{fBW, 5}, {fBW, 6}, {fBW, 7}, {fBW, 8}, {fBW, 9}, {fRX, 0}, {fRX, 1}, {fRX, 2}, {fRX, 3}, {fRW, 10},
		{fBY, 4}, {fGY, 0}, {fGY, 1}, {fGY, 2}, {fGY, 3}, {fGX, 0}, {fGX, 1}, {fGX, 2}, {fGX, 3}, {fGW, 10},
		{fBZ, 0}, {fGZ, 0}, {fGZ, 1}, {fGZ, 2}, {fGZ, 3}, {fBX, 0}, {fBX, 1}, {fBX, 2}, {fBX, 3}, {fBX, 4},
		{fBW, 10}, {fBY, 0}, {fBY, 1}, {fBY, 2}, {fBY, 3}, {fRY, 0}, {fRY, 1}, {fRY, 2}, {fRY, 3}, {fBZ, 1},
		{fBZ, 2}, {fRZ, 0}, {fRZ, 1}, {fRZ, 2}, {fRZ, 3}, {fBZ, 4}, {fBZ, 3}, {fD, 0}, {fD, 1}, {fD, 2},
		{fD, 3}, {fD, 4},
	},
	{ // Mode 6 (0x0e) - 9 5 5 5
		{fM, 0}, {fM, 1}, {fM, 2}, {fM, 3}, {fM, 4}, {fRW, 0}, {fRW, 1}, {fRW, 2}, {fRW, 3}, {fRW, 4},
		{fRW, 5}, {fRW, 6}, {fRW, 7}, {fRW, 8}, {fBY, 4}, {fGW, 0}, {fGW, 1}, {fGW, 2}, {fGW, 3}, {fGW, 4},
		{fGW, 5}, {fGW, 6}, {fGW, 7}, {fGW, 8}, {fGY, 4}, {fBW, 0}, {fBW, 1}, {fBW, 2}, {fBW, 3}, {fBW, 4},
		{fBW, 5}, {fBW, 6}, {fBW, 7}, {fBW, 8}, {fBZ, 4}, {fRX, 0}, {fRX, 1}, {fRX, 2}, {fRX, 3}, {fRX, 4},
		{fGZ, 4}, {fGY, 0}, {fGY, 1}, {fGY, 2}, {fGY, 3}, {fGX, 0}, {fGX, 1}, {fGX, 2}, {fGX, 3}, {fGX, 4},
		{fBZ, 0}, {fGZ, 0}, {fGZ, 1}, {fGZ, 2}, {fGZ, 3}, {fBX, 0}, {fBX, 1}, {fBX, 2}, {fBX, 3}, {fBX, 4},
		{fBZ, 1}, {fBY, 0}, {fBY, 1}, {fBY, 2}, {fBY, 3}, {fRY, 0}, {fRY, 1}, {fRY, 2}, {fRY, 3}, {fRY, 4},
		{fBZ, 2}, {fRZ, 0}, {fRZ, 1}, {fRZ, 2}, {fRZ, 3}, {fRZ, 4}, {fBZ, 3}, {fD, 0}, {fD, 1}, {fD, 2},
		{fD, 3}, {fD, 4},
	},
	{ // Mode 7 (0x12) - 8 6 5 5
		{fM, 0}, {fM, 1}, {fM, 2}, {fM, 3}, {fM, 4}, {fRW, 0}, {fRW, 1}, {fRW, 2}, {fRW, 3}, {fRW, 4},
		{fRW, 5}, {fRW, 6}, {fRW, 7}, {fGZ, 4}, {fBY, 4}, {fGW, 0}, {fGW, 1}, {fGW, 2}, {fGW, 3}, {fGW, 4},
		{fGW, 5}, {fGW, 6}, {fGW, 7}, {fBZ, 2}, {fGY, 4}, {fBW, 0}, {fBW, 1}, {fBW, 2}, {fBW, 3}, {fBW, 4},
		{fBW, 5}, {fBW, 6}, {fBW, 7}, {fBZ, 3}, {fBZ, 4}, {fRX, 0}, {fRX, 1}, {fRX, 2}, {fRX, 3}, {fRX, 4},
		{fRX, 5}, {fGY, 0}, {fGY, 1}, {fGY, 2}, {fGY, 3}, {fGX, 0}, {fGX, 1}, {fGX, 2}, {fGX, 3}, {fGX, 4},
		{fBZ, 0}, {fGZ, 0}, {fGZ, 1}, {fGZ, 2}, {fGZ, 3}, {fBX, 0}, {fBX, 1}, {fBX, 2}, {fBX, 3}, {fBX, 4},
		{fBZ, 1}, {fBY, 0}, {fBY, 1}, {fBY, 2}, {fBY, 3}, {fRY, 0}, {fRY, 1}, {fRY, 2}, {fRY, 3}, {fRY, 4},
		{fRY, 5}, {fRZ, 0}, {fRZ, 1}, {fRZ, 2}, {fRZ, 3}, {fRZ, 4}, {fRZ, 5}, {fD, 0}, {fD, 1}, {fD, 2},
		{fD, 3}, {fD, 4},
	},
	{ // Mode 8 (0x16) - 8 5 6 5
		{fM, 0}, {fM, 1}, {fM, 2}, {fM, 3}, {fM, 4}, {fRW, 0}, {fRW, 1}, {fRW, 2}, {fRW, 3}, {fRW, 4},
		{fRW, 5}, {fRW, 6}, {fRW, 7}, {fBZ, 0}, {fBY, 4}, {fGW, 0}, {fGW, 1}, {fGW, 2}, {fGW, 3}, {fGW, 4},
		{fGW, 5}, {fGW, 6}, {fGW, 7}, {fGY, 5}, {fGY, 4}, {fBW, 0}, {fBW, 1}, {fBW, 2}, {fBW, 3}, {fBW, 4},
		{fBW, 5}, {fBW, 6}, {fBW, 7}, {fGZ, 5}, {fBZ, 4}, {fRX, 0}, {fRX, 1}, {fRX, 2}, {fRX, 3}, {fRX, 4},
		{fGZ, 4}, {fGY, 0}, {fGY, 1}, {fGY, 2}, {fGY, 3}, {fGX, 0}, {fGX, 1}, {fGX, 2}, {fGX, 3}, {fGX, 4},
		{fGX, 5}, {fGZ, 0}, {fGZ, 1}, {fGZ, 2}, {fGZ, 3}, {fBX, 0}, {fBX, 1}, {fBX, 2}, {fBX, 3}, {fBX, 4},
		{fBZ, 1}, {fBY, 0}, {fBY, 1}, {fBY, 2}, {fBY, 3}, {fRY, 0}, {fRY, 1}, {fRY, 2}, {fRY, 3}, {fRY, 4},
		{fBZ, 2}, {fRZ, 0}, {fRZ, 1}, {fRZ, 2}, {fRZ, 3}, {fRZ, 4}, {fBZ, 3}, {fD, 0}, {fD, 1}, {fD, 2},
		{fD, 3}, {fD, 4},
	},
	{ // Mode 9 (0x1a) - 8 5 5 6
		{fM, 0}, {fM, 1}, {fM, 2}, {fM, 3}, {fM, 4}, {fRW, 0}, {fRW, 1}, {fRW, 2}, {fRW, 3}, {fRW, 4},
		{fRW, 5}, {fRW, 6}, {fRW, 7}, {fBZ, 1}, {fBY, 4}, {fGW, 0}, {fGW, 1}, {fGW, 2}, {fGW, 3}, {fGW, 4},
		{fGW, 5}, {fGW, 6}, {fGW, 7}, {fBY, 5}, {fGY, 4}, {fBW, 0}, {fBW, 1}, {fBW, 2}, {fBW, 3}, {fBW, 4},
		{fBW, 5}, {fBW, 6}, {fBW, 7}, {fBZ, 5}, {fBZ, 4}, {fRX, 0}, {fRX, 1}, {fRX, 2}, {fRX, 3}, {fRX, 4},
		{fGZ, 4}, {fGY, 0}, {fGY, 1}, {fGY, 2}, {fGY, 3}, {fGX, 0}, {fGX, 1}, {fGX, 2}, {fGX, 3}, {fGX, 4},
		{fBZ, 0}, {fGZ, 0}, {fGZ, 1}, {fGZ, 2}, {fGZ, 3}, {fBX, 0}, {fBX, 1}, {fBX, 2}, {fBX, 3}, {fBX, 4},
		{fBX, 5}, {fBY, 0}, {fBY, 1}, {fBY, 2}, {fBY, 3}, {fRY, 0}, {fRY, 1}, {fRY, 2}, {fRY, 3}, {fRY, 4},
		{fBZ, 2}, {fRZ, 0}, {fRZ, 1}, {fRZ, 2}, {fRZ, 3}, {fRZ, 4}, {fBZ, 3}, {fD, 0}, {fD, 1}, {fD, 2},
		{fD, 3}, {fD, 4},
	},
	{ // Mode 10 (0x1e) - 6 6 6 6
		{fM, 0}, {fM, 1}, {fM, 2}, {fM, 3}, {fM, 4}, {fRW, 0}, {fRW, 1}, {fRW, 2}, {fRW, 3}, {fRW, 4},
		{fRW, 5}, {fGZ, 4}, {fBZ, 0}, {fBZ, 1}, {fBY, 4}, {fGW, 0}, {fGW, 1}, {fGW, 2}, {fGW, 3}, {fGW, 4},
		{fGW, 5}, {fGY, 5}, {fBY, 5}, {fBZ, 2}, {fGY, 4}, {fBW, 0}, {fBW, 1}, {fBW, 2}, {fBW, 3}, {fBW, 4},
		{fBW, 5}, {fGZ, 5}, {fBZ, 3}, {fBZ, 5}, {fBZ, 4}, {fRX, 0}, {fRX, 1}, {fRX, 2}, {fRX, 3}, {fRX, 4},
		{fRX, 5}, {fGY, 0}, {fGY, 1}, {fGY, 2}, {fGY, 3}, {fGX, 0}, {fGX, 1}, {fGX, 2}, {fGX, 3}, {fGX, 4},
		{fGX, 5}, {fGZ, 0}, {fGZ, 1}, {fGZ, 2}, {fGZ, 3}, {fBX, 0}, {fBX, 1}, {fBX, 2}, {fBX, 3}, {fBX, 4},
		{fBX, 5}, {fBY, 0}, {fBY, 1}, {fBY, 2}, {fBY, 3}, {fRY, 0}, {fRY, 1}, {fRY, 2}, {fRY, 3}, {fRY, 4},
		{fRY, 5}, {fRZ, 0}, {fRZ, 1}, {fRZ, 2}, {fRZ, 3}, {fRZ, 4}, {fRZ, 5}, {fD, 0}, {fD, 1}, {fD, 2},
		{fD, 3}, {fD, 4},
	},
	{ // Mode 11 (0x03) - 10 10
		{fM, 0}, {fM, 1}, {fM, 2}, {fM, 3}, {fM, 4}, {fRW, 0}, {fRW, 1}, {fRW, 2}, {fRW, 3}, {fRW, 4},
		{fRW, 5}, {fRW, 6}, {fRW, 7}, {fRW, 8}, {fRW, 9}, {fGW, 0}, {fGW, 1}, {fGW, 2}, {fGW, 3}, {fGW, 4},
		{fGW, 5}, {fGW, 6}, {fGW, 7}, {fGW, 8}, {fGW, 9}, {fBW, 0}, {fBW, 1}, {fBW, 2}, {fBW, 3}, {fBW, 4},
		{fBW, 5}, {fBW, 6}, {fBW, 7}, {fBW, 8}, {fBW, 9}, {fRX, 0}, {fRX, 1}, {fRX, 2}, {fRX, 3}, {fRX, 4},
		{fRX, 5}, {fRX, 6}, {fRX, 7}, {fRX, 8}, {fRX, 9}, {fGX, 0}, {fGX, 1}, {fGX, 2}, {fGX, 3}, {fGX, 4},
		{fGX, 5}, {fGX, 6}, {fGX, 7}, {fGX, 8}, {fGX, 9}, {fBX, 0}, {fBX, 1}, {fBX, 2}, {fBX, 3}, {fBX, 4},
		{fBX, 5}, {fBX, 6}, {fBX, 7}, {fBX, 8}, {fBX, 9}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0},
		{fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0},
		{fNA, 0}, {fNA, 0},
	},
	{ // Mode 12 (0x07) - 11 9
		{fM, 0}, {fM, 1}, {fM, 2}, {fM, 3}, {fM, 4}, {fRW, 0}, {fRW, 1}, {fRW, 2}, {fRW, 3}, {fRW, 4},
		{fRW, 5}, {fRW, 6}, {fRW, 7}, {fRW, 8}, {fRW, 9}, {fGW, 0}, {fGW, 1}, {fGW, 2}, {fGW, 3}, {fGW, 4},
		{fGW, 5}, {fGW, 6}, {fGW, 7}, {fGW, 8}, {fGW, 9}, {fBW, 0}, {fBW, 1}, {fBW, 2}, {fBW, 3}, {fBW, 4},
		{fBW, 5}, {fBW, 6}, {fBW, 7}, {fBW, 8}, {fBW, 9}, {fRX, 0}, {fRX, 1}, {fRX, 2}, {fRX, 3}, {fRX, 4},
		{fRX, 5}, {fRX, 6}, {fRX, 7}, {fRX, 8}, {fRW, 10}, {fGX, 0}, {fGX, 1}, {fGX, 2}, {fGX, 3}, {fGX, 4},
		{fGX, 5}, {fGX, 6}, {fGX, 7}, {fGX, 8}, {fGW, 10}, {fBX, 0}, {fBX, 1}, {fBX, 2}, {fBX, 3}, {fBX, 4},
		{fBX, 5}, {fBX, 6}, {fBX, 7}, {fBX, 8}, {fBW, 10}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0},
		{fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0},
		{fNA, 0}, {fNA, 0},
	},
	{ // Mode 13 (0x0b) - 12 8
		{fM, 0}, {fM, 1}, {fM, 2}, {fM, 3}, {fM, 4}, {fRW, 0}, {fRW, 1}, {fRW, 2}, {fRW, 3}, {fRW, 4},
		{fRW, 5}, {fRW, 6}, {fRW, 7}, {fRW, 8}, {fRW, 9}, {fGW, 0}, {fGW, 1}, {fGW, 2}, {fGW, 3}, {fGW, 4},
		{fGW, 5}, {fGW, 6}, {fGW, 7}, {fGW, 8}, {fGW, 9}, {fBW, 0}, {fBW, 1}, {fBW, 2}, {fBW, 3}, {fBW, 4},
		{fBW, 5}, {fBW, 6}, {fBW, 7}, {fBW, 8}, {fBW, 9}, {fRX, 0}, {fRX, 1}, {fRX, 2}, {fRX, 3}, {fRX, 4},
		{fRX, 5}, {fRX, 6}, {fRX, 7}, {fRW, 11}, {fRW, 10}, {fGX, 0}, {fGX, 1}, {fGX, 2}, {fGX, 3}, {fGX, 4},
		{fGX, 5}, {fGX, 6}, {fGX, 7}, {fGW, 11}, {fGW, 10}, {fBX, 0}, {fBX, 1}, {fBX, 2}, {fBX, 3}, {fBX, 4},
		{fBX, 5}, {fBX, 6}, {fBX, 7}, {fBW, 11}, {fBW, 10}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0},
		{fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0},
		{fNA, 0}, {fNA, 0},
	},
	{ // Mode 14 (0x0f) - 16 4
		{fM, 0}, {fM, 1}, {fM, 2}, {fM, 3}, {fM, 4}, {fRW, 0}, {fRW, 1}, {fRW, 2}, {fRW, 3}, {fRW, 4},
		{fRW, 5}, {fRW, 6}, {fRW, 7}, {fRW, 8}, {fRW, 9}, {fGW, 0}, {fGW, 1}, {fGW, 2}, {fGW, 3}, {fGW, 4},
		{fGW, 5}, {fGW, 6}, {fGW, 7}, {fGW, 8}, {fGW, 9}, {fBW, 0}, {fBW, 1}, {fBW, 2}, {fBW, 3}, {fBW, 4},
		{fBW, 5}, {fBW, 6}, {fBW, 7}, {fBW, 8}, {fBW, 9}, {fRX, 0}, {fRX, 1}, {fRX, 2}, {fRX, 3}, {fRW, 15},
		{fRW, 14}, {fRW, 13}, {fRW, 12}, {fRW, 11}, {fRW, 10}, {fGX, 0}, {fGX, 1}, {fGX, 2}, {fGX, 3}, {fGW, 15},
		{fGW, 14}, {fGW, 13}, {fGW, 12}, {fGW, 11}, {fGW, 10}, {fBX, 0}, {fBX, 1}, {fBX, 2}, {fBX, 3}, {fBW, 15},
		{fBW, 14}, {fBW, 13}, {fBW, 12}, {fBW, 11}, {fBW, 10}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0},
		{fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0}, {fNA, 0},
		{fNA, 0}, {fNA, 0},
	},
}
