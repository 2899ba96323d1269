package level

// Script is the authored campaign: three levels of records separated by "|".
const Script = "sl,275,1|sl,533,2|sl,800,3|bl,1,1|bl,279,2|bl,538,3|p,80,15|s,38,c,a,1,15|u,10,57,4|u,15,41,4|" +
	"c,27,73,5,2x|g,10,65,1|g,9,41,1|g,24,81,1|g,3,94,1|c,15,105,5,coin5|c,29,107,5,coin2|u,7,114,2|u,15,126,2|g,15,116,1|" +
	"g,7,125,1|g,28,123,1|c,19,144,10,hp|u,4,173,2|u,13,178,4|g,25,185,1|g,3,208,1|g,12,214,1|g,10,226,1|p,257,20|" +
	"u,5,241,2|u,28,243,2|g,11,246,2|g,29,240,1|c,20,249,5,coin3|s,62,c,a,1,15|s,70,c,a,1,15|s,77,c,a,1,15|w,78,5,s,78,c,a,1,15|s,89,l,a,1,15|" +
	"s,96,r,a,1,10|s,111,l,a,1,10|w,78,5,s,78,l,a,1,5|w,78,10,s,78,c,a,1,20|s,110,r,a,1,10|s,128,r,a,1,10|s,147,r,a,1,10|s,186,a,a,1,26|s,208,r,a,1,20|s,223,r,a,1,20|" +
	"s,238,r,a,1,20|s,255,c,a,1,10|s,255,r,a,1,10|s,255,l,a,1,10|s,216,l,a,1,10|s,232,l,a,1,10|s,199,l,a,1,10|s,159,c,a,1,10|s,168,l,a,1,10|s,139,l,a,1,15|" +
	"c,12,193,5,2x|c,23,228,5,hp|s,50,c,a,1,15|u,23,14,3|w,255,8,s,255,c,a,1,15|t,19,15,Press 'C' to uplink.|t,5,15,Press 'X' to bomb.|t,12,5,Hold 'Z' to lazer.|g,11,316,2|c,20,305,10,lazer|" +
	"g,22,326,2|g,9,345,2|g,13,355,2|g,22,366,2|g,14,380,2|g,20,380,1|c,25,384,10,hp|u,19,366,4|u,16,355,4|u,12,345,4|" +
	"u,14,376,5|g,8,400,2|g,22,410,2|g,10,424,2|g,21,441,2|g,8,464,2|g,11,486,2|u,26,400,4|u,9,411,4|u,18,429,4|" +
	"u,11,441,4|u,12,463,4|u,20,463,4|u,9,496,4|c,5,509,10,hp|c,10,512,10,2x|c,16,509,10,hp|c,21,512,10,coin5|p,525,10|g,24,464,1|" +
	"p,475,20|s,315,l,a,1,21|s,333,c,a,1,25|s,350,a,a,2,25|s,369,a,a,1,20|p,390,15|s,388,c,a,2,10|w,388,5,s,388,a,a,1,25|s,400,c,a,2,10|s,417,l,a,2,25|" +
	"s,441,r,a,2,15|s,473,a,a,2,25|w,473,5,s,473,r,a,1,15|w,473,5,s,473,l,a,1,15|w,473,15,s,473,r,a,2,10|w,486,10,s,486,c,a,2,15|w,496,10,s,496,c,a,2,15|p,18,12|c,9,14,5,coin3|g,28,593,2|" +
	"g,4,787,3|g,15,783,2|g,27,787,3|u,4,776,5|u,10,749,5|u,8,759,5|u,8,707,5|u,25,654,5|u,15,560,5|c,20,560,8,lazer|" +
	"c,28,589,8,2x|c,16,602,10,coin6|c,4,621,8,hp|g,16,598,3|g,4,656,3|g,8,669,3|u,25,618,5|u,7,634,5|u,12,685,5|g,27,692,3|" +
	"c,29,682,10,coin4|c,19,696,10,coin4|c,3,692,10,2x|u,25,704,5|g,19,715,2|g,2,720,2|g,3,739,2|g,9,744,2|u,15,776,5|p,794,45|" +
	"s,577,a,a,3,8|s,590,a,a,4,6|s,604,l,a,2,12|s,622,c,a,4,10|s,650,a,a,3,20|s,671,c,a,4,10|s,696,c,a,4,10|s,731,c,a,4,10|s,756,c,a,4,10|s,768,a,a,4,20|" +
	"s,619,l,a,3,9|s,676,l,a,3,9|s,708,l,a,3,9|s,744,l,a,3,9|s,634,r,a,3,18|s,688,r,a,3,9|s,731,r,a,3,9|s,756,r,a,3,9|s,791,c,a,3,10|w,791,5,s,791,a,a,4,8|" +
	"w,791,8,s,791,l,a,4,12|w,791,12,s,791,r,a,4,12|w,790,20,s,790,a,a,3,15|w,791,20,s,791,a,a,3,15|w,790,20,s,790,c,a,4,20|w,791,30,s,791,c,a,4,35|u,27,776,5|s,685,a,a,4,15|s,662,a,a,4,15"
