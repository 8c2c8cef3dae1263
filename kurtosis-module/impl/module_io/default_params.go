package module_io

// To see the exact JSON keys needed to override these values, see the ExecuteParams object and look for the
//  `json:"XXXXXXX"` metadata on the ExecuteParams properties
func getDefaultParams() *ExecuteParams {
	return &ExecuteParams{
		Participants: []*ParticipantParams{
			{
				ELClientType: ParticipantELClientType_Geth,
				CLClientType: ParticipantCLClientType_Lighthouse,
				Count:        1,
			},
		},
		Network: &NetworkParams{
			NetworkID:                          "120893",
			SecondsPerSlot:                     12,
			SlotsPerEpoch:                      32,
			CapellaForkEpoch:                   0,
			DenebForkEpoch:                     0,
			ElectraForkEpoch:                   0,
			NumValidatorKeysPerNode:            64,
			PreregisteredValidatorKeysMnemonic: "giant issue aisle success illegal bike spike question tent bar rely arctic volcano long crawl hungry vocal artwork sniff fantasy very lucky have athlete",
		},
		AdditionalServices: []string{
			AdditionalService_Dora,
			AdditionalService_SovaSentinel,
		},
		Sentinel:       &SentinelParams{},
		DockerCache:    nil,
		ClientLogLevel: GlobalClientLogLevel_Info,
	}
}
