package bitquery

const blockHeadQuery = `query ($network: BitcoinNetwork!) {
  bitcoin(network: $network) {
    blocks(options: {desc: "height", limit: 1}) { height }
  }
}`

const balancesQuery = `query ($network: BitcoinNetwork!, $addresses: [String!]) {
  bitcoin(network: $network) {
    addressStats(address: {in: $addresses}) {
      address { address balance }
    }
  }
}`

const blockRangeQuery = `query ($network: BitcoinNetwork!, $from: Int!, $to: Int!, $limit: Int!) {
  bitcoin(network: $network) {
    inputs(height: {between: [$from, $to]}, options: {limit: $limit}) {
      block { height timestamp { time(format: "%Y-%m-%dT%H:%M:%SZ") } }
      inputAddress { address }
      value
      transaction { hash }
    }
    outputs(height: {between: [$from, $to]}, options: {limit: $limit}) {
      block { height timestamp { time(format: "%Y-%m-%dT%H:%M:%SZ") } }
      outputAddress { address }
      value
      transaction { hash }
    }
  }
}`

const txDetailsQuery = `query ($network: BitcoinNetwork!, $hash: String!) {
  bitcoin(network: $network) {
    inputs(txHash: {is: $hash}) {
      block { height timestamp { time(format: "%Y-%m-%dT%H:%M:%SZ") } }
      inputAddress { address }
      value
      transaction { hash }
    }
    outputs(txHash: {is: $hash}) {
      block { height timestamp { time(format: "%Y-%m-%dT%H:%M:%SZ") } }
      outputAddress { address }
      value
      transaction { hash }
    }
  }
}`

const addressTxsQuery = `query ($network: BitcoinNetwork!, $address: String!, $limit: Int!) {
  bitcoin(network: $network) {
    inputs(inputAddress: {is: $address}, options: {desc: "block.height", limit: $limit}) {
      block { height timestamp { time(format: "%Y-%m-%dT%H:%M:%SZ") } }
      inputAddress { address }
      value
      transaction { hash }
    }
    outputs(outputAddress: {is: $address}, options: {desc: "block.height", limit: $limit}) {
      block { height timestamp { time(format: "%Y-%m-%dT%H:%M:%SZ") } }
      outputAddress { address }
      value
      transaction { hash }
    }
  }
}`
