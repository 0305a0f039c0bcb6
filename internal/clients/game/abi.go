package game

// DefaultContractAddress is where the game contract is deployed
const DefaultContractAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

// Contract method names
const (
	MethodCheckIfUserHasNFT       = "checkIfUserHasNFT"
	MethodGetAllDefaultCharacters = "getAllDefaultCharacters"
	MethodGetBigBoss              = "getBigBoss"
	MethodMintCharacterNFT        = "mintCharacterNFT"
	MethodAttackBoss              = "attackBoss"
)

// ContractABI is the subset of the game contract ABI the client uses
const ContractABI = `[
	{
		"inputs": [],
		"name": "checkIfUserHasNFT",
		"outputs": [
			{
				"components": [
					{"internalType": "uint256", "name": "characterIndex", "type": "uint256"},
					{"internalType": "string",  "name": "name",           "type": "string"},
					{"internalType": "string",  "name": "imageURI",       "type": "string"},
					{"internalType": "uint256", "name": "hp",             "type": "uint256"},
					{"internalType": "uint256", "name": "maxHp",          "type": "uint256"},
					{"internalType": "uint256", "name": "attackDamage",   "type": "uint256"}
				],
				"internalType": "struct MyEpicGame.CharacterAttributes",
				"name": "",
				"type": "tuple"
			}
		],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "getAllDefaultCharacters",
		"outputs": [
			{
				"components": [
					{"internalType": "uint256", "name": "characterIndex", "type": "uint256"},
					{"internalType": "string",  "name": "name",           "type": "string"},
					{"internalType": "string",  "name": "imageURI",       "type": "string"},
					{"internalType": "uint256", "name": "hp",             "type": "uint256"},
					{"internalType": "uint256", "name": "maxHp",          "type": "uint256"},
					{"internalType": "uint256", "name": "attackDamage",   "type": "uint256"}
				],
				"internalType": "struct MyEpicGame.CharacterAttributes[]",
				"name": "",
				"type": "tuple[]"
			}
		],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "getBigBoss",
		"outputs": [
			{
				"components": [
					{"internalType": "string",  "name": "name",         "type": "string"},
					{"internalType": "string",  "name": "imageURI",     "type": "string"},
					{"internalType": "uint256", "name": "hp",           "type": "uint256"},
					{"internalType": "uint256", "name": "maxHp",        "type": "uint256"},
					{"internalType": "uint256", "name": "attackDamage", "type": "uint256"}
				],
				"internalType": "struct MyEpicGame.BigBoss",
				"name": "",
				"type": "tuple"
			}
		],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "uint256", "name": "_characterIndex", "type": "uint256"}
		],
		"name": "mintCharacterNFT",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "attackBoss",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`
