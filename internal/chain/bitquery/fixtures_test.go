package bitquery

const balancesFixture = `{"data": {"bitcoin": {"addressStats": [
  {"address": {"balance": 53.64268525999978, "address": "qrr7f0rdh63phexmjkuh3nwcp9mjwktwvg550vmdhm"}},
  {"address": {"balance": 0.0, "address": "qqycmfm53pkqnv5rlscwwl866yyqesqar52fm2lx5u"}},
  {"address": {"balance": 0.4867306499999984, "address": "qqyy3mss5vmthgnu0m5sm39pcfq8z799ku2nxernca"}}
]}}}`

const blockRangeFixture = `{"data": {"bitcoin": {
  "inputs": [
    {"block": {"height": 796210, "timestamp": {"time": "2023-06-01T12:00:00Z"}}, "inputAddress": {"address": "qqyy3mss5vmthgnu0m5sm39pcfq8z799ku2nxernca"}, "value": 0.4867306499999984, "transaction": {"hash": "6c1f3a"}},
    {"block": {"height": 796210}, "inputAddress": {"address": ""}, "value": 0.0, "transaction": {"hash": "cb0000"}},
    {"block": {"height": 796211}, "inputAddress": {"address": "qqyy3mss5vmthgnu0m5sm39pcfq8z799ku2nxernca"}, "value": 2.95e-05, "transaction": {"hash": "7d2e4b"}},
    {"inputAddress": {"address": "qnoblock"}, "value": 1.0, "transaction": {"hash": "broken"}}
  ],
  "outputs": [
    {"block": {"height": 796210}, "outputAddress": {"address": "qrr7f0rdh63phexmjkuh3nwcp9mjwktwvg550vmdhm"}, "value": 0.48, "transaction": {"hash": "6c1f3a"}},
    {"block": {"height": 796210}, "outputAddress": {"address": "d-6c1f3a"}, "value": 0.0, "transaction": {"hash": "6c1f3a"}},
    {"block": {"height": 796210}, "outputAddress": {"address": ""}, "value": 0.0, "transaction": {"hash": "6c1f3a"}}
  ]
}}}`

const txDetailsFixture = `{"data": {"bitcoin": {
  "inputs": [
    {"block": {"height": 796210, "timestamp": {"time": "2023-06-01 12:00:00"}}, "inputAddress": {"address": "qqyy3mss5vmthgnu0m5sm39pcfq8z799ku2nxernca"}, "value": 0.4867306499999984, "transaction": {"hash": "6c1f3a"}}
  ],
  "outputs": [
    {"block": {"height": 796210}, "outputAddress": {"address": "qrr7f0rdh63phexmjkuh3nwcp9mjwktwvg550vmdhm"}, "value": 0.48, "transaction": {"hash": "6c1f3a"}},
    {"block": {"height": 796210}, "outputAddress": {"address": "qqyy3mss5vmthgnu0m5sm39pcfq8z799ku2nxernca"}, "value": 0.0067, "transaction": {"hash": "6c1f3a"}}
  ]
}}}`
