package oklink

const (
	avaxAddress = "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be"
	usdtAddress = "0x9702230a8ea53601f5cd2dc00fdbc13d4df4a8c7"
	peerAddress = "0x1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e"
)

const blockHeadFixture = `{"code": "0", "msg": "", "data": [{"page": "1", "blockList": [{"hash": "0xabc", "height": "38129544", "blockTime": "1700000000000"}]}]}`

const balancesFixture = `{"code": "0", "msg": "", "data": [{"page": "1", "balanceList": [
	{"address": "0x1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E", "balance": "12.5"},
	{"address": "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be", "balance": "0.000000000000000001"}
]}]}`

const addressTxsFixture = `{"code": "0", "msg": "", "data": [{"page": "1", "limit": "50", "totalPage": "1", "transactionLists": [
	{"txId": "0xin", "methodId": "", "height": "38129500", "transactionTime": "1700000000000", "from": "0x1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e", "to": "0x3F5CE5FBFE3E9AF3971DD833D26BA9B5C936F0BE", "isFromContract": false, "amount": "1.25", "transactionSymbol": "AVAX", "txFee": "0.000525", "state": "success", "tokenContractAddress": "", "challengeStatus": ""},
	{"txId": "0xout", "methodId": "", "height": "38129510", "transactionTime": "1700000010000", "from": "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be", "to": "0x1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e", "isFromContract": false, "amount": "0.5", "transactionSymbol": "AVAX", "txFee": "0.000525", "state": "success", "tokenContractAddress": "", "challengeStatus": ""},
	{"txId": "0xcall", "methodId": "0x095ea7b3", "height": "38129511", "transactionTime": "1700000011000", "from": "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be", "to": "0x1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e", "amount": "0", "state": "success"},
	{"txId": "0xfail", "methodId": "", "height": "38129512", "transactionTime": "1700000012000", "from": "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be", "to": "0x1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e", "amount": "1", "state": "fail"},
	{"txId": "0xself", "methodId": "", "height": "38129513", "transactionTime": "1700000013000", "from": "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be", "to": "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be", "amount": "1", "state": "success"},
	{"txId": "0xchallenged", "methodId": "", "height": "38129514", "transactionTime": "1700000014000", "from": "0x1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e", "to": "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be", "amount": "3", "state": "success", "challengeStatus": "pending"},
	{"txId": "0xforeign", "methodId": "", "height": "38129515", "transactionTime": "1700000015000", "from": "0x1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e", "to": "0xb97ef9ef8734c71904d8002f8b6bc66dd9c48a6e", "amount": "2", "state": "success", "tokenContractAddress": "", "challengeStatus": ""}
]}]}`

const tokenTxsFixture = `{"code": "0", "msg": "", "data": [{"page": "1", "limit": "50", "totalPage": "1", "transactionLists": [
	{"txId": "0xusdt", "methodId": "", "height": "38129520", "transactionTime": "1700000020000", "from": "0x1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e", "to": "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be", "amount": "2.27", "transactionSymbol": "USDT", "state": "success", "tokenContractAddress": "0x9702230A8EA53601F5CD2DC00FDBC13D4DF4A8C7", "challengeStatus": ""},
	{"txId": "0xother", "methodId": "", "height": "38129521", "transactionTime": "1700000021000", "from": "0x1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e", "to": "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be", "amount": "9", "transactionSymbol": "XYZ", "state": "success", "tokenContractAddress": "0xdeadbeef", "challengeStatus": ""}
]}]}`

const nativeTxFixture = `{"code": "0", "msg": "", "data": [{
	"txid": "0xnative", "height": "38129500", "transactionTime": "1700000000000", "amount": "1.25", "txfee": "0.000525", "state": "success", "methodId": "", "confirm": "44",
	"inputDetails": [{"inputHash": "0x1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e"}],
	"outputDetails": [{"outputHash": "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be"}],
	"tokenContractAddress": "", "tokenTransferDetails": []
}]}`

const tokenTxFixture = `{"code": "0", "msg": "", "data": [{
	"txid": "0xtoken", "height": "38129520", "transactionTime": "1700000020000", "amount": "0", "txfee": "0.001", "state": "success", "methodId": "0xa9059cbb",
	"inputDetails": [{"inputHash": "0x1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e"}],
	"outputDetails": [{"outputHash": "0x9702230a8ea53601f5cd2dc00fdbc13d4df4a8c7"}],
	"tokenContractAddress": "",
	"tokenTransferDetails": [{"from": "0x1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e", "to": "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be", "amount": "2.27", "symbol": "USDT", "tokenContractAddress": "0x9702230a8ea53601f5cd2dc00fdbc13d4df4a8c7"}]
}]}`

const blockTxsFixture = `{"code": "0", "msg": "", "data": [{"page": "1", "blockList": [
	{"txid": "0xb1", "methodId": "", "height": "38129544", "transactionTime": "1700000030000", "from": "0x1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E", "to": "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be", "isFromContract": false, "amount": "4", "state": "success", "tokenContractAddress": ""},
	{"txid": "0xb2", "methodId": "0xa9059cbb", "height": "38129544", "transactionTime": "1700000030000", "from": "0x1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e", "to": "0x9702230a8ea53601f5cd2dc00fdbc13d4df4a8c7", "amount": "0", "state": "success", "tokenContractAddress": ""}
]}]}`

const tokenBalanceFixture = `{"code": "0", "msg": "", "data": [{"page": "1", "totalPage": "1", "tokenList": [
	{"symbol": "USDT", "tokenContractAddress": "0x9702230A8Ea53601f5cD2dc00fDBc13d4dF4A8c7", "holdingAmount": "1520.75"}
]}]}`

const tokenBalancesFixture = `{"code": "0", "msg": "", "data": [{"page": "1", "totalPage": "1", "balanceList": [
	{"address": "0x1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E", "holdingAmount": "40", "tokenContractAddress": "0x9702230a8ea53601f5cd2dc00fdbc13d4df4a8c7"},
	{"address": "0x1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e", "holdingAmount": "999", "tokenContractAddress": "0xb97ef9ef8734c71904d8002f8b6bc66dd9c48a6e"},
	{"address": "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be", "holdingAmount": "0.5", "tokenContractAddress": "0x9702230A8EA53601F5CD2DC00FDBC13D4DF4A8C7"}
]}]}`
