package qrcode

// Static parameter tables for QR model 2, versions 1-40.  Indexing by
// error correction level follows the column order L=0, M=1, Q=2, H=3.

// blockLayout describes how the data codewords of one (version, level)
// combination split into Reed-Solomon blocks: numBlocks1 blocks of
// numCodewords1 data codewords, followed by numBlocks2 blocks of
// numCodewords2 data codewords.
type blockLayout struct {
	numCodewords1 int
	numBlocks1    int
	numCodewords2 int
	numBlocks2    int
}

// dataBytesPerBlock[version-1][level] is the data codeword blocking.
var dataBytesPerBlock = [40][4]blockLayout{
	{{19, 1, 0, 0}, {16, 1, 0, 0}, {13, 1, 0, 0}, {9, 1, 0, 0}}, // 1
	{{34, 1, 0, 0}, {28, 1, 0, 0}, {22, 1, 0, 0}, {16, 1, 0, 0}}, // 2
	{{55, 1, 0, 0}, {44, 1, 0, 0}, {17, 2, 0, 0}, {13, 2, 0, 0}}, // 3
	{{80, 1, 0, 0}, {32, 2, 0, 0}, {24, 2, 0, 0}, {9, 4, 0, 0}}, // 4
	{{108, 1, 0, 0}, {43, 2, 0, 0}, {15, 2, 16, 2}, {11, 2, 12, 2}}, // 5
	{{68, 2, 0, 0}, {27, 4, 0, 0}, {19, 4, 0, 0}, {15, 4, 0, 0}}, // 6
	{{78, 2, 0, 0}, {31, 4, 0, 0}, {14, 2, 15, 4}, {13, 4, 14, 1}}, // 7
	{{97, 2, 0, 0}, {38, 2, 39, 2}, {18, 4, 19, 2}, {14, 4, 15, 2}}, // 8
	{{116, 2, 0, 0}, {36, 3, 37, 2}, {16, 4, 17, 4}, {12, 4, 13, 4}}, // 9
	{{68, 2, 69, 2}, {43, 4, 44, 1}, {19, 6, 20, 2}, {15, 6, 16, 2}}, // 10
	{{81, 4, 0, 0}, {50, 1, 51, 4}, {22, 4, 23, 4}, {12, 3, 13, 8}}, // 11
	{{92, 2, 93, 2}, {36, 6, 37, 2}, {20, 4, 21, 6}, {14, 7, 15, 4}}, // 12
	{{107, 4, 0, 0}, {37, 8, 38, 1}, {20, 8, 21, 4}, {11, 12, 12, 4}}, // 13
	{{115, 3, 116, 1}, {40, 4, 41, 5}, {16, 11, 17, 5}, {12, 11, 13, 5}}, // 14
	{{87, 5, 88, 1}, {41, 5, 42, 5}, {24, 5, 25, 7}, {12, 11, 13, 7}}, // 15
	{{98, 5, 99, 1}, {45, 7, 46, 3}, {19, 15, 20, 2}, {15, 3, 16, 13}}, // 16
	{{107, 1, 108, 5}, {46, 10, 47, 1}, {22, 1, 23, 15}, {14, 2, 15, 17}}, // 17
	{{120, 5, 121, 1}, {43, 9, 44, 4}, {22, 17, 23, 1}, {14, 2, 15, 19}}, // 18
	{{113, 3, 114, 4}, {44, 3, 45, 11}, {21, 17, 22, 4}, {13, 9, 14, 16}}, // 19
	{{107, 3, 108, 5}, {41, 3, 42, 13}, {24, 15, 25, 5}, {15, 15, 16, 10}}, // 20
	{{116, 4, 117, 4}, {42, 17, 0, 0}, {22, 17, 23, 6}, {16, 19, 17, 6}}, // 21
	{{111, 2, 112, 7}, {46, 17, 0, 0}, {24, 7, 25, 16}, {13, 34, 0, 0}}, // 22
	{{121, 4, 122, 5}, {47, 4, 48, 14}, {24, 11, 25, 14}, {15, 16, 16, 14}}, // 23
	{{117, 6, 118, 4}, {45, 6, 46, 14}, {24, 11, 25, 16}, {16, 30, 17, 2}}, // 24
	{{106, 8, 107, 4}, {47, 8, 48, 13}, {24, 7, 25, 22}, {15, 22, 16, 13}}, // 25
	{{114, 10, 115, 2}, {46, 19, 47, 4}, {22, 28, 23, 6}, {16, 33, 17, 4}}, // 26
	{{122, 8, 123, 4}, {45, 22, 46, 3}, {23, 8, 24, 26}, {15, 12, 16, 28}}, // 27
	{{117, 3, 118, 10}, {45, 3, 46, 23}, {24, 4, 25, 31}, {15, 11, 16, 31}}, // 28
	{{116, 7, 117, 7}, {45, 21, 46, 7}, {23, 1, 24, 37}, {15, 19, 16, 26}}, // 29
	{{115, 5, 116, 10}, {47, 19, 48, 10}, {24, 15, 25, 25}, {15, 23, 16, 25}}, // 30
	{{115, 13, 116, 3}, {46, 2, 47, 29}, {24, 42, 25, 1}, {15, 23, 16, 28}}, // 31
	{{115, 17, 0, 0}, {46, 10, 47, 23}, {24, 10, 25, 35}, {15, 19, 16, 35}}, // 32
	{{115, 17, 116, 1}, {46, 14, 47, 21}, {24, 29, 25, 19}, {15, 11, 16, 46}}, // 33
	{{115, 13, 116, 6}, {46, 14, 47, 23}, {24, 44, 25, 7}, {16, 59, 17, 1}}, // 34
	{{121, 12, 122, 7}, {47, 12, 48, 26}, {24, 39, 25, 14}, {15, 22, 16, 41}}, // 35
	{{121, 6, 122, 14}, {47, 6, 48, 34}, {24, 46, 25, 10}, {15, 2, 16, 64}}, // 36
	{{122, 17, 123, 4}, {46, 29, 47, 14}, {24, 49, 25, 10}, {15, 24, 16, 46}}, // 37
	{{122, 4, 123, 18}, {46, 13, 47, 32}, {24, 48, 25, 14}, {15, 42, 16, 32}}, // 38
	{{117, 20, 118, 4}, {47, 40, 48, 7}, {24, 43, 25, 22}, {15, 10, 16, 67}}, // 39
	{{118, 19, 119, 6}, {47, 18, 48, 31}, {24, 34, 25, 34}, {15, 20, 16, 61}}, // 40
}

// ecBytesPerBlock[version-1][level] is the number of error correction
// codewords in every block of that combination.
var ecBytesPerBlock = [40][4]int{
	{7, 10, 13, 17}, // 1
	{10, 16, 22, 28}, // 2
	{15, 26, 18, 22}, // 3
	{20, 18, 26, 16}, // 4
	{26, 24, 18, 22}, // 5
	{18, 16, 24, 28}, // 6
	{20, 18, 18, 26}, // 7
	{24, 22, 22, 26}, // 8
	{30, 22, 20, 24}, // 9
	{18, 26, 24, 28}, // 10
	{20, 30, 28, 24}, // 11
	{24, 22, 26, 28}, // 12
	{26, 22, 24, 22}, // 13
	{30, 24, 20, 24}, // 14
	{22, 24, 30, 24}, // 15
	{24, 28, 24, 30}, // 16
	{28, 28, 28, 28}, // 17
	{30, 26, 28, 28}, // 18
	{28, 26, 26, 26}, // 19
	{28, 26, 30, 28}, // 20
	{28, 26, 28, 30}, // 21
	{28, 28, 30, 24}, // 22
	{30, 28, 30, 30}, // 23
	{30, 28, 30, 30}, // 24
	{26, 28, 30, 30}, // 25
	{28, 28, 28, 30}, // 26
	{30, 28, 30, 30}, // 27
	{30, 28, 30, 30}, // 28
	{30, 28, 30, 30}, // 29
	{30, 28, 30, 30}, // 30
	{30, 28, 30, 30}, // 31
	{30, 28, 30, 30}, // 32
	{30, 28, 30, 30}, // 33
	{30, 28, 30, 30}, // 34
	{30, 28, 30, 30}, // 35
	{30, 28, 30, 30}, // 36
	{30, 28, 30, 30}, // 37
	{30, 28, 30, 30}, // 38
	{30, 28, 30, 30}, // 39
	{30, 28, 30, 30}, // 40
}

// alignmentCenters[version-2] lists the coordinates whose cartesian
// product with itself yields the candidate alignment pattern centers.
// Version 1 carries no alignment patterns.
var alignmentCenters = [39][]int{
	{6, 18}, // 2
	{6, 22}, // 3
	{6, 26}, // 4
	{6, 30}, // 5
	{6, 34}, // 6
	{6, 22, 38}, // 7
	{6, 24, 42}, // 8
	{6, 26, 46}, // 9
	{6, 28, 50}, // 10
	{6, 30, 54}, // 11
	{6, 32, 58}, // 12
	{6, 34, 62}, // 13
	{6, 26, 46, 66}, // 14
	{6, 26, 48, 70}, // 15
	{6, 26, 50, 74}, // 16
	{6, 30, 54, 78}, // 17
	{6, 30, 56, 82}, // 18
	{6, 30, 58, 86}, // 19
	{6, 34, 62, 90}, // 20
	{6, 28, 50, 72, 94}, // 21
	{6, 26, 50, 74, 98}, // 22
	{6, 30, 54, 78, 102}, // 23
	{6, 28, 54, 80, 106}, // 24
	{6, 32, 58, 84, 110}, // 25
	{6, 30, 58, 86, 114}, // 26
	{6, 34, 62, 90, 118}, // 27
	{6, 26, 50, 74, 98, 122}, // 28
	{6, 30, 54, 78, 102, 126}, // 29
	{6, 26, 52, 78, 104, 130}, // 30
	{6, 30, 56, 82, 108, 134}, // 31
	{6, 34, 60, 86, 112, 138}, // 32
	{6, 30, 58, 86, 114, 142}, // 33
	{6, 34, 62, 90, 118, 146}, // 34
	{6, 30, 54, 78, 102, 126, 150}, // 35
	{6, 24, 50, 76, 102, 128, 154}, // 36
	{6, 28, 54, 80, 106, 132, 158}, // 37
	{6, 32, 58, 84, 110, 136, 162}, // 38
	{6, 26, 54, 82, 110, 138, 166}, // 39
	{6, 30, 58, 86, 114, 142, 170}, // 40
}

// formatBitSequence[level*8+mask] is the 15 bit format information
// sequence with BCH redundancy and the 0x5412 xor mask already applied.
var formatBitSequence = [32]uint16{
	0x77C4, 0x72F3, 0x7DAA, 0x789D, 0x662F, 0x6318, 0x6C41, 0x6976,
	0x5412, 0x5125, 0x5E7C, 0x5B4B, 0x45F9, 0x40CE, 0x4F97, 0x4AA0,
	0x355F, 0x3068, 0x3F31, 0x3A06, 0x24B4, 0x2183, 0x2EDA, 0x2BED,
	0x1689, 0x13BE, 0x1CE7, 0x19D0, 0x0762, 0x0255, 0x0D0C, 0x083B,
}

// versionBitSequence[version-7] is the 18 bit version information
// sequence with Golay redundancy already applied.  Versions below 7
// carry no version information.
var versionBitSequence = [34]uint32{
	0x07C94, 0x085BC, 0x09A99, 0x0A4D3, 0x0BBF6, 0x0C762,
	0x0D847, 0x0E60D, 0x0F928, 0x10B78, 0x1145D, 0x12A17,
	0x13532, 0x149A6, 0x15683, 0x168C9, 0x177EC, 0x18EC4,
	0x191E1, 0x1AFAB, 0x1B08E, 0x1CC1A, 0x1D33F, 0x1ED75,
	0x1F250, 0x209D5, 0x216F0, 0x228BA, 0x2379F, 0x24B0B,
	0x2542E, 0x26A64, 0x27541, 0x28C69,
}
